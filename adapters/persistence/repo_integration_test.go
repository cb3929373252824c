package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	domainpost "github.com/khoahotran/devconnect/internal/domain/post"
	domainprofile "github.com/khoahotran/devconnect/internal/domain/profile"
	domainuser "github.com/khoahotran/devconnect/internal/domain/user"
	"github.com/khoahotran/devconnect/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	userRepo    domainuser.Repository
	profileRepo domainprofile.Repository
	postRepo    domainpost.Repository
	testOwner   *domainuser.User
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewZapLogger("development")
	s.userRepo = NewPostgresUserRepo(s.dbPool)
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, testLogger)
	s.postRepo = NewPostgresPostRepo(s.dbPool)

	s.testOwner = &domainuser.User{
		ID:           uuid.New(),
		Name:         "Test Owner",
		Email:        "testowner@example.com",
		PasswordHash: "hashedpassword",
		Avatar:       "https://example.com/avatar.png",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_UserRepo_FindByEmail() {
	ctx := context.Background()

	u, err := s.userRepo.FindByEmail(ctx, s.testOwner.Email)
	s.Require().NoError(err)
	s.Equal(s.testOwner.ID, u.ID)
	s.Equal("Test Owner", u.Name)

	_, err = s.userRepo.FindByEmail(ctx, "nobody@example.com")
	s.Error(err)
}

func (s *RepoIntegrationTestSuite) Test_ProfileRepo_UpsertAndFind() {
	ctx := context.Background()

	p := &domainprofile.Profile{
		UserID:         s.testOwner.ID,
		Company:        "Acme",
		Status:         "Developer",
		Bio:            "first bio",
		GithubUsername: "testowner",
		Skills:         []string{"Go", "SQL"},
		Social:         map[string]string{"twitter": "https://twitter.com/testowner"},
		Experience: []domainprofile.Experience{
			{ID: uuid.New(), Title: "Engineer", Company: "Acme", From: time.Now().UTC().Truncate(time.Second)},
		},
		Education: []domainprofile.Education{},
		UpdatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	found, err := s.profileRepo.FindByUserID(ctx, s.testOwner.ID)
	s.Require().NoError(err)
	s.Equal("Acme", found.Company)
	s.Equal([]string{"Go", "SQL"}, found.Skills)
	s.Len(found.Experience, 1)
	// joined user fields
	s.Equal("Test Owner", found.Name)
	s.Equal(s.testOwner.Avatar, found.Avatar)

	// second upsert keeps a single row
	p.Status = "Senior Developer"
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	profiles, err := s.profileRepo.List(ctx)
	s.Require().NoError(err)
	s.Len(profiles, 1)
	s.Equal("Senior Developer", profiles[0].Status)
}

func (s *RepoIntegrationTestSuite) Test_ProfileRepo_FindMissing() {
	_, err := s.profileRepo.FindByUserID(context.Background(), uuid.New())
	s.ErrorIs(err, domainprofile.ErrProfileNotFound)
}

func (s *RepoIntegrationTestSuite) Test_PostRepo_SaveUpdateDelete() {
	ctx := context.Background()

	p := &domainpost.Post{
		ID:        uuid.New(),
		UserID:    s.testOwner.ID,
		Text:      "integration post",
		Name:      s.testOwner.Name,
		Avatar:    s.testOwner.Avatar,
		Likes:     []domainpost.Like{},
		Comments:  []domainpost.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.postRepo.Save(ctx, p))

	found, err := s.postRepo.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("integration post", found.Text)
	s.Empty(found.Likes)

	s.Require().NoError(found.AddLike(s.testOwner.ID))
	found.AddComment(domainpost.Comment{
		ID:        uuid.New(),
		UserID:    s.testOwner.ID,
		Name:      s.testOwner.Name,
		Text:      "a comment",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(s.postRepo.Update(ctx, found))

	reloaded, err := s.postRepo.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Len(reloaded.Likes, 1)
	s.Len(reloaded.Comments, 1)

	s.Require().NoError(s.postRepo.Delete(ctx, p.ID))
	_, err = s.postRepo.FindByID(ctx, p.ID)
	s.ErrorIs(err, domainpost.ErrPostNotFound)
}

func (s *RepoIntegrationTestSuite) Test_PostRepo_ListNewestFirst() {
	ctx := context.Background()

	older := &domainpost.Post{
		ID: uuid.New(), UserID: s.testOwner.ID, Text: "older",
		Likes: []domainpost.Like{}, Comments: []domainpost.Comment{},
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := &domainpost.Post{
		ID: uuid.New(), UserID: s.testOwner.ID, Text: "newer",
		Likes: []domainpost.Like{}, Comments: []domainpost.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.postRepo.Save(ctx, older))
	s.Require().NoError(s.postRepo.Save(ctx, newer))

	posts, err := s.postRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(posts), 2)
	s.Equal("newer", posts[0].Text)
}

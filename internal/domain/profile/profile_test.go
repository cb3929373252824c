package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfile_Apply_PartialUpdate(t *testing.T) {
	p := &Profile{
		UserID:   uuid.New(),
		Company:  "Acme",
		Bio:      "old bio",
		Status:   "Developer",
		Skills:   []string{"Go"},
		Social:   map[string]string{"twitter": "https://twitter.com/old"},
	}

	p.Apply(Patch{
		Status: strPtr("Senior Developer"),
		Skills: []string{"Go", "SQL"},
		Social: map[string]string{"youtube": "https://youtube.com/new"},
	})

	// unset fields retain prior values
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "old bio", p.Bio)

	assert.Equal(t, "Senior Developer", p.Status)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.Equal(t, "https://twitter.com/old", p.Social["twitter"])
	assert.Equal(t, "https://youtube.com/new", p.Social["youtube"])
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go,,  "))
	assert.Empty(t, SplitSkills(""))
}

func TestProfile_AddExperience_PrependsNewest(t *testing.T) {
	p := &Profile{UserID: uuid.New()}
	p.AddExperience(Experience{ID: uuid.New(), Title: "first"})
	p.AddExperience(Experience{ID: uuid.New(), Title: "second"})

	assert.Len(t, p.Experience, 2)
	assert.Equal(t, "second", p.Experience[0].Title)
}

func TestProfile_RemoveExperience(t *testing.T) {
	a := Experience{ID: uuid.New(), Title: "a", From: time.Now()}
	b := Experience{ID: uuid.New(), Title: "b", From: time.Now()}
	c := Experience{ID: uuid.New(), Title: "c", From: time.Now()}
	p := &Profile{UserID: uuid.New(), Experience: []Experience{a, b, c}}

	err := p.RemoveExperience(uuid.New())
	assert.ErrorIs(t, err, ErrExperienceNotFound)
	assert.Len(t, p.Experience, 3)

	assert.NoError(t, p.RemoveExperience(b.ID))
	assert.Len(t, p.Experience, 2)
	// order of the rest is preserved
	assert.Equal(t, "a", p.Experience[0].Title)
	assert.Equal(t, "c", p.Experience[1].Title)
}

func TestProfile_RemoveEducation(t *testing.T) {
	a := Education{ID: uuid.New(), School: "a"}
	b := Education{ID: uuid.New(), School: "b"}
	p := &Profile{UserID: uuid.New(), Education: []Education{a, b}}

	assert.ErrorIs(t, p.RemoveEducation(uuid.New()), ErrEducationNotFound)
	assert.NoError(t, p.RemoveEducation(a.ID))
	assert.Len(t, p.Education, 1)
	assert.Equal(t, "b", p.Education[0].School)
}

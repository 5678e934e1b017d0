package auth

import (
	"context"
	"testing"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_University(t *testing.T) {
	m := NewMock(nil)

	profile, err := m.AuthenticateUniversity(context.Background(), domain.Credentials{Email: "tpo@iitd.ac.in", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, domain.UniversityProfile{
		Name:           "Dr. Rajesh Kumar",
		Email:          "tpo@iitd.ac.in",
		UniversityName: "Indian Institute of Technology, Delhi",
		Designation:    "Placement Officer",
	}, *profile)
}

func TestMock_StudentProfilesDoNotShareSkills(t *testing.T) {
	m := NewMock(nil)
	creds := domain.StudentCredentials{Email: "priya@x.edu", Password: "x", College: "IIT Delhi"}

	first, err := m.AuthenticateStudent(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "IIT Delhi", first.College)
	assert.Equal(t, []string{"Python", "Java", "React"}, first.Skills)

	first.Skills[0] = "Go"
	second, err := m.AuthenticateStudent(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "Python", second.Skills[0])
}

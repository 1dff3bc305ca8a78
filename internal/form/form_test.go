package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FieldLevelErrors(t *testing.T) {
	f := New(Job())
	f.Set("title", "X")
	f.Set("description", "too short")

	ok := f.Validate()
	require.False(t, ok)

	assert.Equal(t, "Title is required", f.Error("title"))
	assert.Equal(t, "Company is required", f.Error("company"))
	assert.Equal(t, "Description must be at least 10 characters", f.Error("description"))
	assert.Equal(t, "Deadline is required", f.Error("deadline"))
}

func TestValidate_JobOK(t *testing.T) {
	f := New(Job())
	f.Set("title", "Backend Engineer")
	f.Set("company", "Acme")
	f.Set("location", "Casablanca")
	f.Set("description", "Design and run the jobs API.")
	f.Set("deadline", "2026-12-31")

	assert.True(t, f.Validate())
	for _, field := range f.Fields() {
		assert.Empty(t, f.Error(field.Name), field.Name)
	}
}

func TestSetClearsFieldError(t *testing.T) {
	f := New(Job())
	require.False(t, f.Validate())
	require.NotEmpty(t, f.Error("title"))

	f.Set("title", "Backend Engineer")
	assert.Empty(t, f.Error("title"))
	// Other field errors stay until the next Validate.
	assert.NotEmpty(t, f.Error("company"))
}

func TestApplicationSchema(t *testing.T) {
	f := New(Application())
	f.Set("cvLink", "not a url")
	f.Set("coverLetter", "short")
	require.False(t, f.Validate())
	assert.Equal(t, "Please enter a valid URL", f.Error("cvLink"))
	assert.Equal(t, "Cover letter must be at least 50 characters", f.Error("coverLetter"))

	f.Set("cvLink", "https://cv.example.com/sara.pdf")
	f.Set("coverLetter", strings.Repeat("I am a good fit for this role. ", 3))
	assert.True(t, f.Validate())
}

func TestApplicationSchema_EmptyCoverLetterBlocksSubmission(t *testing.T) {
	f := New(Application())
	f.Set("cvLink", "https://cv.example.com/sara.pdf")
	f.Set("coverLetter", "")
	assert.False(t, f.Validate())
	assert.NotEmpty(t, f.Error("coverLetter"))
}

func TestApplicationSchema_CoverLetterTooLong(t *testing.T) {
	f := New(Application())
	f.Set("cvLink", "https://cv.example.com/sara.pdf")
	f.Set("coverLetter", strings.Repeat("x", 5001))
	require.False(t, f.Validate())
	assert.Equal(t, "Cover letter must be at most 5000 characters", f.Error("coverLetter"))
}

func TestLoginSchema(t *testing.T) {
	f := New(Login())
	f.Set("email", "nope")
	f.Set("password", "12345")
	require.False(t, f.Validate())
	assert.Equal(t, "Please enter a valid email", f.Error("email"))
	assert.Equal(t, "Password must be at least 6 characters", f.Error("password"))

	f.Set("email", "sara@example.com")
	f.Set("password", "hunter22")
	assert.True(t, f.Validate())
}

func TestSignupSchema_ConfirmMustMatch(t *testing.T) {
	f := New(Signup())
	f.Set("name", "Sara")
	f.Set("email", "sara@example.com")
	f.Set("password", "hunter22")
	f.Set("confirm", "hunter23")
	require.False(t, f.Validate())
	assert.Equal(t, "Passwords do not match", f.Error("confirm"))

	f.Set("confirm", "hunter22")
	assert.True(t, f.Validate())
}

func TestURLRule(t *testing.T) {
	rule := URL("bad url")
	f := New(Schema{})
	assert.Empty(t, rule("https://example.com/cv.pdf", f))
	assert.Empty(t, rule("http://example.com", f))
	assert.NotEmpty(t, rule("ftp://example.com", f))
	assert.NotEmpty(t, rule("example.com", f))
	assert.NotEmpty(t, rule("", f))
}

func TestReset(t *testing.T) {
	f := New(Login())
	f.Set("email", "sara@example.com")
	require.False(t, f.Validate())

	f.Reset()
	assert.Empty(t, f.Value("email"))
	assert.Empty(t, f.Error("password"))
}

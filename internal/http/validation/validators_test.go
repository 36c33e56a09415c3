package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Title", 10)
	assert.Empty(t, v("Dune"))
	assert.Equal(t, "Title is required", v(""))
	assert.Equal(t, "Title is required", v("   "))
	assert.Equal(t, "Title must be at most 10 characters", v(strings.Repeat("x", 11)))
}

func TestIntRange(t *testing.T) {
	v := IntRange("Publication year", 1, 9999)
	assert.Empty(t, v("1965"))
	assert.Empty(t, v(" 1 "))
	assert.Equal(t, "Publication year must be a number", v("abc"))
	assert.Equal(t, "Publication year must be a number", v(""))
	assert.Equal(t, "Publication year must be between 1 and 9999", v("0"))
	assert.Equal(t, "Publication year must be between 1 and 9999", v("10000"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Status", "Borrowed", "Pending", "Returned")
	assert.Empty(t, v("Pending"))
	assert.Equal(t, "Status must be one of: Borrowed, Pending, Returned", v("Lost"))
}

func TestDate(t *testing.T) {
	v := Date("Borrow date")
	assert.Empty(t, v("2024-03-09"))
	assert.Equal(t, "Borrow date is required", v(""))
	assert.Equal(t, "Borrow date must be a date in YYYY-MM-DD format", v("03/09/2024"))
}

func TestOptional(t *testing.T) {
	v := Optional(IntRange("Year", 1, 9999))
	assert.Empty(t, v(""))
	assert.Empty(t, v("1999"))
	assert.NotEmpty(t, v("abc"))
}

func TestValidator_Accumulates(t *testing.T) {
	errs := New().
		Validate("title", "", Required("Title", 255)).
		Validate("author", "Herbert", Required("Author", 255)).
		Validate("publicationYear", "-3", IntRange("Publication year", 1, 9999)).
		Errors()

	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "publicationYear")
	assert.NotContains(t, errs, "author")
}

func TestValidator_FirstErrorPerFieldWins(t *testing.T) {
	errs := New().
		Validate("year", "", Required("Year", 0), IntRange("Year", 1, 9999)).
		Errors()

	assert.Equal(t, "Year is required", errs["year"])

	v := New()
	assert.True(t, v.Valid())
	assert.Nil(t, v.Errors())
}

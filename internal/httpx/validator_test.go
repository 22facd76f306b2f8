package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	UserName   string `json:"user_name" validate:"required,max=100"`
	UserAvatar string `json:"user_avatar" validate:"omitempty,url"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=2000"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		details := ValidateStruct(sampleReq{
			UserName: "Ayşe",
			Rating:   5,
			Comment:  "Harika",
		})
		assert.Nil(t, details)
	})

	t.Run("missing required fields", func(t *testing.T) {
		details := ValidateStruct(sampleReq{})
		require.Len(t, details, 3)

		fields := make([]string, len(details))
		for i, d := range details {
			fields[i] = d.Field
		}
		assert.Contains(t, fields, "userName")
		assert.Contains(t, fields, "rating")
		assert.Contains(t, fields, "comment")
	})

	t.Run("range violation", func(t *testing.T) {
		details := ValidateStruct(sampleReq{UserName: "A", Rating: 9, Comment: "x"})
		require.Len(t, details, 1)
		assert.Equal(t, "rating", details[0].Field)
		assert.Equal(t, "Rating must be at most 5", details[0].Message)
	})

	t.Run("invalid avatar url", func(t *testing.T) {
		details := ValidateStruct(sampleReq{UserName: "A", UserAvatar: "not-a-url", Rating: 3, Comment: "x"})
		require.Len(t, details, 1)
		assert.Equal(t, "userAvatar", details[0].Field)
		assert.Equal(t, "UserAvatar must be a valid URL", details[0].Message)
	})
}

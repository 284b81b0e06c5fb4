package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	req := require.New(t)
	a, b := GenerateID(), GenerateID()
	req.NotEqual(a, b)
	_, err := uuid.Parse(a)
	req.NoError(err)
}

func TestHashPassword(t *testing.T) {
	req := require.New(t)
	hash, err := HashPassword("password")
	req.NoError(err)
	req.NotEqual("password", hash)
	req.True(CheckPassword("password", hash))
	req.False(CheckPassword("Password", hash))
}

package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestBuildingTokenRoundTrip(t *testing.T) {
	buildingID := uuid.New()

	raw, err := IssueBuildingToken(buildingID, "Kantor Pusat", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := ParseBuildingToken(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, buildingID, got)
}

func TestBuildingTokenWrongSecret(t *testing.T) {
	raw, err := IssueBuildingToken(uuid.New(), "Kantor Pusat", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseBuildingToken(raw, "secret-lain")
	assert.Error(t, err)
}

func TestBuildingTokenExpired(t *testing.T) {
	buildingID := uuid.New()
	claims := jwt.MapClaims{
		"building_id": buildingID.String(),
		"exp":         time.Now().Add(-time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseBuildingToken(raw, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestBuildingTokenMissingClaim(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseBuildingToken(raw, testSecret)
	assert.Error(t, err)
}

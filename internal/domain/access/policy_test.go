package access

import (
	"testing"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"github.com/stretchr/testify/require"
)

func TestCanMutateArtwork(t *testing.T) {
	artwork := works.Artwork{ID: 1, ArtistID: 7}

	require.NoError(t, CanMutateArtwork(7, artwork))

	err := CanMutateArtwork(8, artwork)
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestRequireArtist(t *testing.T) {
	require.NoError(t, RequireArtist(users.User{ID: 1, IsArtist: true}))

	err := RequireArtist(users.User{ID: 2, IsArtist: false})
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestCanMutateReview(t *testing.T) {
	review := reviews.Review{ID: 3, UserID: 11}

	require.NoError(t, CanMutateReview(11, review))

	err := CanMutateReview(12, review)
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

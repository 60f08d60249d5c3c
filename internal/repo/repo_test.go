package repo

import (
	"testing"

	"artmarket-app/database"
	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/purchases"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRepos(t *testing.T) *Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func seedUser(t *testing.T, r *Repositories, name, email string, isArtist bool) users.User {
	t.Helper()
	u, err := r.Users.Create(name, email, "hash-"+name, isArtist)
	require.NoError(t, err)
	return u
}

func seedArtwork(t *testing.T, r *Repositories, title string, price float64, artistID uint) works.Artwork {
	t.Helper()
	a, err := r.Artworks.Create(title, nil, price, artistID)
	require.NoError(t, err)
	return a
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := testRepos(t)

	seedUser(t, r, "Ann", "ann@x.com", true)

	_, err := r.Users.Create("Other Ann", "ann@x.com", "other-hash", false)
	require.ErrorIs(t, err, apperr.ErrConflict)

	var count int64
	require.NoError(t, r.Users.DB.Model(&users.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateArtworkUnknownArtist(t *testing.T) {
	r := testRepos(t)

	_, err := r.Artworks.Create("Sky", nil, 100, 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, r.Artworks.DB.Model(&works.Artwork{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateArtworkNegativePrice(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)

	_, err := r.Artworks.Create("Sky", nil, -1, ann.ID)
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = r.Artworks.Create("Sky", nil, 0, ann.ID)
	require.NoError(t, err)
}

func TestUpdateArtworkPartialPatch(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	title := "Night Sky"
	updated, err := r.Artworks.Update(a.ID, ArtworkPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Night Sky", updated.Title)
	require.Equal(t, 100.0, updated.Price)

	price := 150.0
	updated, err = r.Artworks.Update(a.ID, ArtworkPatch{Price: &price})
	require.NoError(t, err)
	require.Equal(t, "Night Sky", updated.Title)
	require.Equal(t, 150.0, updated.Price)

	bad := -5.0
	_, err = r.Artworks.Update(a.ID, ArtworkPatch{Price: &bad})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = r.Artworks.Update(999, ArtworkPatch{Title: &title})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListArtworksOrderedByID(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)

	first := seedArtwork(t, r, "One", 10, ann.ID)
	second := seedArtwork(t, r, "Two", 20, ann.ID)
	third := seedArtwork(t, r, "Three", 30, ann.ID)

	items, err := r.Artworks.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []uint{first.ID, second.ID, third.ID}, []uint{items[0].ID, items[1].ID, items[2].ID})
	require.NotNil(t, items[0].Artist)
	require.Equal(t, "Ann", items[0].Artist.Name)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	for _, rating := range []int{0, 6, -1} {
		_, err := r.Reviews.Create("nope", rating, bob.ID, a.ID)
		require.ErrorIs(t, err, apperr.ErrInvalidArgument, "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		_, err := r.Reviews.Create("fine", rating, bob.ID, a.ID)
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestCreateReviewReferentialIntegrity(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	_, err := r.Reviews.Create("ghost author", 3, 999, a.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = r.Reviews.Create("ghost artwork", 3, ann.ID, 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, r.Reviews.DB.Model(&reviews.Review{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestUpdateReviewKeepsReferences(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	rv, err := r.Reviews.Create("nice", 4, bob.ID, a.ID)
	require.NoError(t, err)

	content := "very nice"
	rating := 5
	updated, err := r.Reviews.Update(rv.ID, ReviewPatch{Content: &content, Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, "very nice", updated.Content)
	require.Equal(t, 5, updated.Rating)
	require.Equal(t, bob.ID, updated.UserID)
	require.Equal(t, a.ID, updated.ArtworkID)

	bad := 6
	_, err = r.Reviews.Update(rv.ID, ReviewPatch{Rating: &bad})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestListReviewsForUnknownArtwork(t *testing.T) {
	r := testRepos(t)

	_, err := r.Reviews.ListForArtwork(999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPurchaseAmountCheck(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	_, err := r.Purchases.Create(bob.ID, a.ID, 99.99)
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	var count int64
	require.NoError(t, r.Purchases.DB.Model(&purchases.Purchase{}).Count(&count).Error)
	require.EqualValues(t, 0, count)

	p, err := r.Purchases.Create(bob.ID, a.ID, 100)
	require.NoError(t, err)
	require.False(t, p.PurchaseDate.IsZero())

	_, err = r.Purchases.Create(bob.ID, a.ID, 150)
	require.NoError(t, err)
}

func TestPurchaseReferentialIntegrity(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	_, err := r.Purchases.Create(999, a.ID, 200)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = r.Purchases.Create(ann.ID, 999, 200)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, r.Purchases.DB.Model(&purchases.Purchase{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestListPurchasesForUser(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)
	b := seedArtwork(t, r, "Sea", 50, ann.ID)

	_, err := r.Purchases.Create(bob.ID, a.ID, 100)
	require.NoError(t, err)
	_, err = r.Purchases.Create(bob.ID, b.ID, 50)
	require.NoError(t, err)

	mine, err := r.Purchases.ListForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Less(t, mine[0].ID, mine[1].ID)

	theirs, err := r.Purchases.ListForUser(ann.ID)
	require.NoError(t, err)
	require.Empty(t, theirs)
}

func TestDeleteArtworkCascadesReviews(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	_, err := r.Reviews.Create("nice", 4, bob.ID, a.ID)
	require.NoError(t, err)

	require.NoError(t, r.Artworks.Delete(a.ID))

	_, err = r.Artworks.Get(a.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, r.Reviews.DB.Model(&reviews.Review{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteArtworkBlockedByPurchases(t *testing.T) {
	r := testRepos(t)
	ann := seedUser(t, r, "Ann", "ann@x.com", true)
	bob := seedUser(t, r, "Bob", "bob@x.com", false)
	a := seedArtwork(t, r, "Sky", 100, ann.ID)

	_, err := r.Purchases.Create(bob.ID, a.ID, 100)
	require.NoError(t, err)

	err = r.Artworks.Delete(a.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = r.Artworks.Get(a.ID)
	require.NoError(t, err)
}

func TestDeleteMissingArtwork(t *testing.T) {
	r := testRepos(t)

	err := r.Artworks.Delete(999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

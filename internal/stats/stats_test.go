package stats_test

import (
	"testing"
	"time"

	"quarters-app/internal/domain/catalog"
	"quarters-app/internal/domain/collection"
	"quarters-app/internal/domain/users"
	"quarters-app/internal/stats"
	"quarters-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFixture(t *testing.T, db *gorm.DB) (owner users.User, other users.User) {
	t.Helper()

	owner = users.User{GoogleSub: "sub-owner", Email: "owner@example.com", Name: "Owner"}
	other = users.User{GoogleSub: "sub-other", Email: "other@example.com", Name: "Other"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&[]catalog.Series{
		{ID: 1, Name: "Founders", StartYear: 1999, EndYear: 2008, TotalCoins: 10},
		{ID: 2, Name: "Uncataloged", StartYear: 2010, EndYear: 2012, TotalCoins: 6},
	}).Error)

	one := uint(1)
	quarters := []catalog.Quarter{
		{ID: 1, Year: 1999, SeriesID: &one, Design: "Alpha"},
		{ID: 2, Year: 1999, SeriesID: &one, Design: "Beta"},
		{ID: 3, Year: 2000, SeriesID: &one, Design: "Gamma"},
		{ID: 4, Year: 2001, SeriesID: &one, Design: "Delta"},
		{ID: 5, Year: 2002, SeriesID: &one, Design: "Epsilon"},
		// No resolved series: invisible to every series-joined count.
		{ID: 6, Year: 2003, Design: "Orphan"},
	}
	require.NoError(t, db.Create(&quarters).Error)

	return owner, other
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0.0, stats.CompletionPercentage(0, 0))
	assert.Equal(t, 0.0, stats.CompletionPercentage(5, 0))
	assert.Equal(t, 0.0, stats.CompletionPercentage(0, 5))
	assert.Equal(t, 40.0, stats.CompletionPercentage(2, 5))
	assert.Equal(t, 33.33, stats.CompletionPercentage(1, 3))
	assert.Equal(t, 66.67, stats.CompletionPercentage(2, 3))
	assert.Equal(t, 100.0, stats.CompletionPercentage(5, 5))
}

func TestForUserZeroOwned(t *testing.T) {
	db := testutil.OpenDB(t)
	owner, _ := seedFixture(t, db)

	s, err := stats.ForUser(db, owner.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 5, s.TotalQuartersAvailable)
	assert.EqualValues(t, 0, s.OwnedQuarters)
	assert.EqualValues(t, 1, s.TotalSeriesAvailable)
	assert.EqualValues(t, 0, s.SeriesWithCoins)
	assert.Equal(t, 0.0, s.OverallCompletionPercentage)

	require.Len(t, s.SeriesBreakdown, 2)
	for _, b := range s.SeriesBreakdown {
		assert.Equal(t, 0.0, b.CompletionPercentage, "series %q", b.Name)
		assert.EqualValues(t, 0, b.OwnedQuarters)
	}
	assert.Empty(t, s.RecentAcquisitions)
}

func TestForUserBreakdownScenario(t *testing.T) {
	db := testutil.OpenDB(t)
	owner, other := seedFixture(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]collection.CollectionEntry{
		{UserID: owner.ID, QuarterID: 1, Condition: "Good", AcquiredAt: now.Add(-time.Hour)},
		{UserID: owner.ID, QuarterID: 3, Condition: "Fine", AcquiredAt: now},
		// Another user's rows must never leak into owner's stats.
		{UserID: other.ID, QuarterID: 2, Condition: "Good", AcquiredAt: now},
	}).Error)

	s, err := stats.ForUser(db, owner.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 5, s.TotalQuartersAvailable)
	assert.EqualValues(t, 2, s.OwnedQuarters)
	assert.EqualValues(t, 1, s.SeriesWithCoins)
	assert.Equal(t, 40.0, s.OverallCompletionPercentage)

	require.Len(t, s.SeriesBreakdown, 2)

	founders := s.SeriesBreakdown[0]
	assert.Equal(t, "Founders", founders.Name)
	assert.EqualValues(t, 5, founders.AvailableQuarters)
	assert.EqualValues(t, 2, founders.OwnedQuarters)
	assert.Equal(t, 40.0, founders.CompletionPercentage)

	empty := s.SeriesBreakdown[1]
	assert.Equal(t, "Uncataloged", empty.Name)
	assert.EqualValues(t, 0, empty.AvailableQuarters)
	assert.Equal(t, 0.0, empty.CompletionPercentage)
}

func TestForUserBreakdownOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	owner, _ := seedFixture(t, db)

	require.NoError(t, db.Create(&catalog.Series{
		ID: 3, Name: "Antiques", StartYear: 1999,
	}).Error)

	s, err := stats.ForUser(db, owner.ID)
	require.NoError(t, err)

	require.Len(t, s.SeriesBreakdown, 3)
	// Start year ascending, name as tiebreaker.
	assert.Equal(t, "Antiques", s.SeriesBreakdown[0].Name)
	assert.Equal(t, "Founders", s.SeriesBreakdown[1].Name)
	assert.Equal(t, "Uncataloged", s.SeriesBreakdown[2].Name)
}

func TestRecentAcquisitions(t *testing.T) {
	db := testutil.OpenDB(t)
	owner, _ := seedFixture(t, db)

	base := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&[]collection.CollectionEntry{
		{UserID: owner.ID, QuarterID: 1, Condition: "Good", AcquiredAt: base},
		{UserID: owner.ID, QuarterID: 2, Condition: "Good", AcquiredAt: base.Add(2 * time.Hour)},
		{UserID: owner.ID, QuarterID: 3, Condition: "Good", AcquiredAt: base.Add(time.Hour)},
	}).Error)

	s, err := stats.ForUser(db, owner.ID)
	require.NoError(t, err)

	require.Len(t, s.RecentAcquisitions, 3)
	assert.Equal(t, "Beta", s.RecentAcquisitions[0].Design)
	assert.Equal(t, "Gamma", s.RecentAcquisitions[1].Design)
	assert.Equal(t, "Alpha", s.RecentAcquisitions[2].Design)
	assert.Equal(t, "Founders", s.RecentAcquisitions[0].SeriesName)
}

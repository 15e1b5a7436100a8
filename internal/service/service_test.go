package service

import (
	"strings"
	"sync"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/goserg/wettkampfwert/internal/domain"
	"github.com/goserg/wettkampfwert/internal/parser"
	"github.com/goserg/wettkampfwert/internal/rating"
)

var export = strings.Join([]string{
	"Muster Hans",
	"(123.45.678.9)",
	"Klassierung",
	"R5 (3426)",
	"Wettkampfwert",
	"4,871",
	"12.05.2024", "Keller Anna", "6,0", "Turnier XY", "6:4 6:3", "S",
	"19.05.2024", "Frei Mia", "4,0", "Turnier XY", "3:6 4:6", "N",
}, "\n")

func newTestSession(t *testing.T) *Session {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	cfg := rating.Config{
		DecayBase:     0.82,
		DecayMax:      24,
		Thresholds:    []rating.Threshold{{Label: "R4", Value: 5.844}, {Label: "R5", Value: 4.721}},
		FallbackLabel: "R6 oder tiefer",
		ClassBoundaries: map[string]map[string][]int{
			"female": {"R5": {2701, 4200}},
		},
	}
	return New(parser.New(log), rating.New(cfg), 5, log)
}

func TestSession_Import(t *testing.T) {
	s := newTestSession(t)

	sum, err := s.Import(export)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Added)
	require.True(t, sum.StartingRatingSet)
	require.InDelta(t, 4.871, s.StartingRating(), 1e-9)

	name, info := s.Player()
	require.Equal(t, "Muster Hans (123.45.678.9)", name)
	require.Equal(t, "R5 (3426)", info.Classification())

	_, err = s.Import(strings.Join([]string{"01.06.2024", "Huber Lea", "5,5", "Liga", "6:0 6:0", "S"}, "\n"))
	require.NoError(t, err)
	require.Len(t, s.Matches(), 3)
	require.Equal(t, "Huber Lea", s.Matches()[2].OpponentName)
	// a later import without player data keeps what is known
	name, _ = s.Player()
	require.Equal(t, "Muster Hans (123.45.678.9)", name)
}

func TestSession_Import_NoResults(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Import(export)
	require.NoError(t, err)
	before := s.Calculate()

	_, err = s.Import("Wettkampfwert\n9,9\nnichts brauchbares")
	require.ErrorIs(t, err, parser.ErrNoResults)
	require.Len(t, s.Matches(), 2)
	require.InDelta(t, 4.871, s.StartingRating(), 1e-9)
	require.Equal(t, before.Total, s.Calculate().Total)
}

func TestSession_RemoveAndClear(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Import(export)
	require.NoError(t, err)

	require.NoError(t, s.Remove(0))
	require.Len(t, s.Matches(), 1)
	require.Equal(t, "Frei Mia", s.Matches()[0].OpponentName)
	require.ErrorIs(t, s.Remove(5), domain.ErrIndexOutOfRange)

	s.Clear()
	require.Empty(t, s.Matches())
	name, info := s.Player()
	require.Empty(t, name)
	require.Empty(t, info)
	require.Zero(t, s.Calculate().GamesCounted)
}

func TestSession_StartingRating(t *testing.T) {
	s := newTestSession(t)
	require.Equal(t, 5.0, s.StartingRating())

	require.NoError(t, s.SetStartingRatingText("6,25"))
	require.Equal(t, 6.25, s.StartingRating())

	require.ErrorIs(t, s.SetStartingRatingText("sechs"), ErrInvalidRating)
	require.Equal(t, 6.25, s.StartingRating())
}

func TestSession_Calculate(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Import(export)
	require.NoError(t, err)

	res := s.Calculate()
	require.Equal(t, 2, res.GamesCounted)
	require.Equal(t, rating.Female, res.Standing.Gender)
	require.Equal(t, "R5", res.Standing.Class)
	require.Equal(t, res.Total, s.Calculate().Total)
}

func TestSession_Snapshot(t *testing.T) {
	s := newTestSession(t)
	var b strings.Builder
	for _, r := range []string{"3,0", "1,0", "2,0", "4,0", "5,0", "6,0"} {
		b.WriteString("12.05.2024\nGegner " + r + "\n" + r + "\nTurnier\n3:6 3:6\nN\n")
	}
	_, err := s.Import(b.String())
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Matches, 6)
	require.Equal(t, []int{1}, snap.Result.ExcludedMatches.ToSlice())
	require.Equal(t, "Gegner 1,0", snap.Matches[1].OpponentName)
	require.Equal(t, 5.0, snap.StartingRating)
}

func TestSession_Snapshot_Concurrent(t *testing.T) {
	s := newTestSession(t)
	row := "12.05.2024\nGegner\n1,0\nTurnier\n3:6 3:6\nN\n"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = s.Import(strings.Repeat(row, 6))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = s.Remove(0)
		}
	}()

	for i := 0; i < 50; i++ {
		snap := s.Snapshot()
		require.Equal(t, len(snap.Matches), snap.Result.GamesCounted)
		for _, idx := range snap.Result.ExcludedMatches.ToSlice() {
			require.Less(t, idx, len(snap.Matches))
		}
	}
	wg.Wait()
}

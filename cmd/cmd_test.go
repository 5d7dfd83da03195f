package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FLASHQUEST_DB", "FLASHQUEST_LEARNER", "FLASHQUEST_DAILY_NEW_LIMIT", "FLASHQUEST_SESSION_CAP"} {
		t.Setenv(k, "")
	}
}

// run executes the root command against db as learner ana.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--db", db, "--learner", "ana"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func cardIDs(t *testing.T, db, deckName string) []string {
	t.Helper()
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	deck, err := st.DeckRepo().GetDeck(ctx, deckName)
	require.NoError(t, err)
	cards, err := st.CardRepo().ListCards(ctx, deck.ID)
	require.NoError(t, err)
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCLI_DeckAndCardFlow(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	out, err := run(t, db, "deck", "create", "spanish", "--description", "basics")
	require.NoError(t, err)
	assert.Contains(t, out, "Created deck")

	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "dos", "two")
	require.NoError(t, err)

	out, err = run(t, db, "deck", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "spanish")
	assert.Contains(t, out, "basics")

	out, err = run(t, db, "card", "list", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "uno")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "new")

	out, err = run(t, db, "session", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "2 cards: 2 new, 0 review")
	assert.Contains(t, out, "dos")
}

func TestCLI_ReviewAndStats(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "deck", "create", "spanish")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	ids := cardIDs(t, db, "spanish")
	require.Len(t, ids, 1)

	out, err := run(t, db, "review", ids[0], "--grade", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "correct")
	assert.Contains(t, out, "reps 1")
	assert.Contains(t, out, "interval 10m")

	out, err = run(t, db, "stats", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "Learner ana")
	assert.Contains(t, out, "1 cards, 0 new, 0 due")
	assert.Contains(t, out, "recognize 1")
	assert.Contains(t, out, "No gems yet.")
}

func TestCLI_ReviewRejectsBadGrade(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "deck", "create", "spanish")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	ids := cardIDs(t, db, "spanish")

	_, err = run(t, db, "review", ids[0], "--grade", "7")
	assert.Error(t, err)
}

func TestCLI_ResetRequiresConfirmation(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "reset", "--yes=false")
	assert.Error(t, err)

	out, err := run(t, db, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset 0 card(s) for learner ana")
}

func TestCLI_UnknownDeck(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "session", "french")
	assert.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	out, err := run(t, db, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flashquest (devel)")
}

func TestCLI_Settings(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	out, err := run(t, db, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily new cards: 20")
	assert.Contains(t, out, "Review limit:    100")

	out, err = run(t, db, "settings", "--daily-new", "1", "--review-limit", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily new cards: 1")
	assert.Contains(t, out, "Review limit:    7")

	_, err = run(t, db, "deck", "create", "spanish")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "dos", "two")
	require.NoError(t, err)

	out, err = run(t, db, "session", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "1 cards: 1 new, 0 review (new today 0/1)")

	_, err = run(t, db, "settings", "--daily-new", "-1")
	assert.Error(t, err)
}

func TestCLI_SessionDueOnly(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "deck", "create", "spanish")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	ids := cardIDs(t, db, "spanish")
	_, err = run(t, db, "review", ids[0], "--grade", "5")
	require.NoError(t, err)

	out, err := run(t, db, "card", "list", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "in 10m")

	out, err = run(t, db, "session", "spanish", "--due-only=false")
	require.NoError(t, err)
	assert.Contains(t, out, "1 cards: 0 new, 1 review")
	assert.Contains(t, out, "scheduled")

	out, err = run(t, db, "session", "spanish", "--due-only")
	require.NoError(t, err)
	assert.Contains(t, out, "0 cards: 0 new, 0 review")
	assert.Contains(t, out, "Nothing to study right now.")

	_, err = run(t, db, "session", "spanish", "--due-only=false")
	require.NoError(t, err)
}

func TestCLI_StatsListsRecentGems(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "deck", "create", "spanish")
	require.NoError(t, err)
	_, err = run(t, db, "card", "add", "spanish", "uno", "one")
	require.NoError(t, err)
	ids := cardIDs(t, db, "spanish")

	var out string
	for i := 0; i < 4; i++ {
		out, err = run(t, db, "review", ids[0], "--grade", "5")
		require.NoError(t, err)
	}
	assert.Contains(t, out, "stage know")
	assert.Contains(t, out, "Mastery gem")

	out, err = run(t, db, "stats", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent gems")
	assert.Contains(t, out, "best: Legendary")
	assert.Contains(t, out, `Mastered "uno"`)
}

func TestCLI_DeckEdit(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "fq.db")

	_, err := run(t, db, "deck", "create", "spanish", "--description", "basics")
	require.NoError(t, err)

	out, err := run(t, db, "deck", "edit", "spanish", "--name", "español")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated deck")

	out, err = run(t, db, "deck", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "español")
	assert.Contains(t, out, "basics", "description kept")

	_, err = run(t, db, "deck", "edit", "spanish", "--name", "x")
	assert.Error(t, err, "old name is gone")
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "now", formatDue(now, now))
	assert.Equal(t, "now", formatDue(now.Add(-time.Hour), now))
	assert.Equal(t, "in 5m", formatDue(now.Add(5*time.Minute), now))
	assert.Equal(t, "in 6h", formatDue(now.Add(6*time.Hour), now))

	// Past time.Duration's range.
	far := now.AddDate(500, 0, 0)
	assert.Equal(t, far.Local().Format("2006-01-02"), formatDue(far, now))
}

func TestPlanRows_StatusAtPlanTime(t *testing.T) {
	planned := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	due := planned.Add(5 * time.Minute)
	plan := &session.Plan{Cards: []session.SessionCard{
		{CardID: "c1", Term: "uno", Stage: session.StageRecognize, DueAt: &due},
	}}

	rows := planRows(plan, planned)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0][3], "scheduled")
	assert.Equal(t, "in 5m", rows[0][4])
}

func TestFormatInterval(t *testing.T) {
	assert.Equal(t, "10m", formatInterval(10))
	assert.Equal(t, "6.0h", formatInterval(360))
	assert.Equal(t, "7.0d", formatInterval(10080))
	// Past time.Duration's range.
	assert.Equal(t, "568.0y", formatInterval(298540800))
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliapixel/emote-shuffler/internal/clock"
	"github.com/Juliapixel/emote-shuffler/internal/planner"
	"github.com/Juliapixel/emote-shuffler/internal/progress"
	"github.com/Juliapixel/emote-shuffler/internal/random"
	"github.com/Juliapixel/emote-shuffler/internal/seventv"
)

// fakeRemote is an in-memory 7TV that enforces unique names within the set.
type fakeRemote struct {
	setID    string
	username string
	emotes   []seventv.Emote

	failAt    int // 1-based rename call that fails; 0 never fails
	renames   int
	fetchErr  error
	fetchedBy string
}

func newFakeRemote(names ...string) *fakeRemote {
	r := &fakeRemote{setID: "set1", username: "forsen"}
	for i, name := range names {
		r.emotes = append(r.emotes, seventv.Emote{ID: fmt.Sprintf("e%d", i), Name: name})
	}
	return r
}

func (r *fakeRemote) snapshot() *seventv.EmoteSet {
	return &seventv.EmoteSet{ID: r.setID, Name: "main", Emotes: slices.Clone(r.emotes)}
}

func (r *fakeRemote) UserEmoteSet(_ context.Context, username string) (*seventv.EmoteSet, error) {
	r.fetchedBy = "username"
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	if username != r.username {
		return nil, seventv.ErrUserNotFound
	}
	return r.snapshot(), nil
}

func (r *fakeRemote) EmoteSet(_ context.Context, setID string) (*seventv.EmoteSet, error) {
	r.fetchedBy = "set"
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	if setID != r.setID {
		return nil, seventv.ErrSetNotFound
	}
	return r.snapshot(), nil
}

func (r *fakeRemote) RenameEmote(_ context.Context, setID, emoteID, name string) error {
	r.renames++
	if r.failAt == r.renames {
		return &seventv.RenameError{EmoteID: emoteID, Name: name, Errors: []seventv.GraphQLError{{Message: "rejected"}}}
	}
	if setID != r.setID {
		return seventv.ErrSetNotFound
	}
	idx := -1
	for i, e := range r.emotes {
		if e.Name == name && e.ID != emoteID {
			return fmt.Errorf("name %q already taken by %s", name, e.ID)
		}
		if e.ID == emoteID {
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("unknown emote %s", emoteID)
	}
	r.emotes[idx].Name = name
	return nil
}

func (r *fakeRemote) names() []string {
	names := make([]string, len(r.emotes))
	for i, e := range r.emotes {
		names[i] = e.Name
	}
	return names
}

func newTestEngine(remote Remote, seed uint64) *Engine {
	return New(remote, clock.NewFakeClock(epoch), random.NewSeeded(seed), zerolog.Nop())
}

func TestShuffle_AppliesPermutation(t *testing.T) {
	original := []string{"KEKW", "OMEGALUL", "Pog", "LULW", "monkaS", "PepeHands", "FeelsGoodMan", "Sadge"}
	remote := newFakeRemote(original...)
	eng := newTestEngine(remote, 11)
	rec := &progress.Recorder{}

	result, err := eng.Shuffle(context.Background(), &ShuffleRequest{
		Username:       "forsen",
		Rate:           100,
		TempNameLength: 16,
		Progress:       rec,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.True(t, result.Complete())
	assert.Equal(t, len(result.Plan.Operations), remote.renames)
	assert.Equal(t, result.Targets, remote.names())
	assert.ElementsMatch(t, original, remote.names())
	assert.Len(t, rec.Updates, len(result.Plan.Operations))
	assert.True(t, rec.Finished)
}

func TestShuffle_Deterministic(t *testing.T) {
	a := newFakeRemote("a", "b", "c", "d", "e")
	b := newFakeRemote("a", "b", "c", "d", "e")

	_, err := newTestEngine(a, 5).Shuffle(context.Background(), &ShuffleRequest{SetID: "set1", Rate: 100})
	require.NoError(t, err)
	_, err = newTestEngine(b, 5).Shuffle(context.Background(), &ShuffleRequest{SetID: "set1", Rate: 100})
	require.NoError(t, err)

	assert.Equal(t, a.names(), b.names())
}

func TestShuffle_SetIDTakesPrecedence(t *testing.T) {
	remote := newFakeRemote("a", "b")
	eng := newTestEngine(remote, 1)

	_, err := eng.Shuffle(context.Background(), &ShuffleRequest{Username: "someone-else", SetID: "set1", Rate: 100, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "set", remote.fetchedBy)
}

func TestShuffle_DryRunRenamesNothing(t *testing.T) {
	remote := newFakeRemote("a", "b", "c", "d")
	eng := newTestEngine(remote, 3)

	result, err := eng.Shuffle(context.Background(), &ShuffleRequest{Username: "forsen", DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Zero(t, result.Applied)
	assert.Zero(t, remote.renames)
	assert.Equal(t, []string{"a", "b", "c", "d"}, remote.names())
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, result.Targets)
}

func TestShuffle_EmptySet(t *testing.T) {
	remote := newFakeRemote()
	eng := newTestEngine(remote, 1)
	rec := &progress.Recorder{}

	result, err := eng.Shuffle(context.Background(), &ShuffleRequest{Username: "forsen", Rate: 100, Progress: rec})
	require.NoError(t, err)

	assert.True(t, result.Plan.IsEmpty())
	assert.True(t, result.Complete())
	assert.Zero(t, remote.renames)
	assert.Empty(t, rec.Updates)
}

func TestShuffle_FailureMidRun(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = fmt.Sprintf("emote%02d", i)
	}
	remote := newFakeRemote(names...)
	remote.failAt = 4
	eng := newTestEngine(remote, 21)

	result, err := eng.Shuffle(context.Background(), &ShuffleRequest{Username: "forsen", Rate: 100})
	require.Error(t, err)
	require.NotNil(t, result, "partial result is returned with the error")

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 3, stepErr.Index)
	var renameErr *seventv.RenameError
	assert.ErrorAs(t, err, &renameErr)

	assert.Equal(t, 3, result.Applied)
	assert.False(t, result.Complete())
	assert.Equal(t, 4, remote.renames, "nothing after the failed rename")

	// the remote holds exactly the first three planned renames
	want := slices.Clone(names)
	index := make(map[string]int, len(remote.emotes))
	for i, e := range remote.emotes {
		index[e.ID] = i
	}
	for _, op := range result.Plan.Operations[:3] {
		want[index[op.TargetID]] = op.NewName
	}
	assert.Equal(t, want, remote.names())

	// the set is still a valid assignment: every emote has a distinct name
	seen := make(map[string]bool)
	for _, name := range remote.names() {
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestShuffle_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *ShuffleRequest
		setup   func(*fakeRemote)
		wantErr error
	}{
		{"no target", &ShuffleRequest{Rate: 100}, nil, ErrNoTarget},
		{"unknown user", &ShuffleRequest{Username: "nobody", Rate: 100}, nil, seventv.ErrUserNotFound},
		{"unknown set", &ShuffleRequest{SetID: "nope", Rate: 100}, nil, seventv.ErrSetNotFound},
		{
			name:    "transport failure",
			req:     &ShuffleRequest{Username: "forsen", Rate: 100},
			setup:   func(r *fakeRemote) { r.fetchErr = seventv.ErrRequest },
			wantErr: seventv.ErrRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote("a", "b")
			if tt.setup != nil {
				tt.setup(remote)
			}

			result, err := newTestEngine(remote, 1).Shuffle(context.Background(), tt.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, remote.renames)
		})
	}
}

func TestShuffle_DuplicateNamesInSnapshot(t *testing.T) {
	remote := newFakeRemote("a", "a")
	_, err := newTestEngine(remote, 1).Shuffle(context.Background(), &ShuffleRequest{Username: "forsen", Rate: 100})

	assert.True(t, errors.Is(err, planner.ErrDuplicateName), "got %v", err)
	assert.Zero(t, remote.renames)
}

func TestShuffle_InvalidRate(t *testing.T) {
	remote := newFakeRemote("a", "b", "c")
	_, err := newTestEngine(remote, 1).Shuffle(context.Background(), &ShuffleRequest{Username: "forsen"})

	assert.ErrorIs(t, err, ErrInvalidRate)
	assert.Zero(t, remote.renames)
}

func TestDescribeSet(t *testing.T) {
	remote := newFakeRemote("a", "b")
	eng := newTestEngine(remote, 1)

	set, err := eng.DescribeSet(context.Background(), &DescribeRequest{Username: "forsen"})
	require.NoError(t, err)
	assert.Equal(t, "set1", set.ID)
	assert.Len(t, set.Emotes, 2)

	_, err = eng.DescribeSet(context.Background(), &DescribeRequest{})
	assert.ErrorIs(t, err, ErrNoTarget)
}

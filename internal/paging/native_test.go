package paging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiper/internal/animation"
	"swiper/internal/config"
	"swiper/internal/domain"
)

// scriptedView replays a fixed sequence of landings and records where it started
type scriptedView struct {
	landings []int
	start    int
	err      error
}

func (v *scriptedView) Show(_ domain.Provider, start int, selected func(int)) error {
	v.start = start
	for _, p := range v.landings {
		selected(p)
	}
	return v.err
}

func TestNativeControllerFollowsView(t *testing.T) {
	view := &scriptedView{landings: []int{2, 2, 3, 3, 1}}
	var selected []int
	opts := Options{InitialPage: 2, OnPageSelected: func(e domain.PageSelectedEvent) {
		selected = append(selected, e.Position)
	}}
	c := NewNativeController(opts, pageSet(5), view, nil)

	var snaps []Snapshot
	c.Subscribe(func(s Snapshot) { snaps = append(snaps, s) })

	require.NoError(t, c.Run())

	assert.Equal(t, 2, view.start)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, []int{3, 1}, selected, "repeated positions are not reported")
	assert.Equal(t, []Snapshot{{Index: 3}, {Index: 1}}, snaps)
}

func TestNativeControllerRunPropagatesError(t *testing.T) {
	boom := errors.New("terminal gone")
	c := NewNativeController(Options{}, pageSet(1), &scriptedView{err: boom}, nil)
	assert.ErrorIs(t, c.Run(), boom)
}

func TestNativeControllerNextAndPrevious(t *testing.T) {
	var selected []int
	opts := Options{OnPageSelected: func(e domain.PageSelectedEvent) {
		selected = append(selected, e.Position)
	}}
	c := NewNativeController(opts, pageSet(2), &scriptedView{}, nil)

	c.PreviousPage()
	assert.Equal(t, 0, c.Index())
	c.NextPage()
	c.NextPage()
	assert.Equal(t, 1, c.Index())
	c.PreviousPage()

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, []int{1, 0}, selected)
}

func TestNativeControllerSetPageIsSilent(t *testing.T) {
	called := false
	opts := Options{OnPageSelected: func(domain.PageSelectedEvent) { called = true }}
	c := NewNativeController(opts, pageSet(2), &scriptedView{}, nil)

	c.SetPage(7)
	c.SetPageWithoutAnimation(7)

	assert.Equal(t, 7, c.Index())
	assert.Equal(t, Snapshot{Index: 7}, c.Snapshot())
	assert.False(t, called)
}

func TestNewSelectsStrategy(t *testing.T) {
	cfg := config.DefaultConfig()

	c, err := New(cfg, OptionsFromConfig(cfg, extent), Deps{Provider: pageSet(2), Animator: animation.New(60)})
	require.NoError(t, err)
	assert.IsType(t, &SwipeController{}, c)

	cfg.Backend = config.BackendNative
	c, err = New(cfg, OptionsFromConfig(cfg, extent), Deps{Provider: pageSet(2), View: &scriptedView{}})
	require.NoError(t, err)
	assert.IsType(t, &NativeController{}, c)
}

func TestNewRejectsMissingDeps(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := New(cfg, Options{}, Deps{Provider: pageSet(1)})
	assert.Error(t, err)

	cfg.Backend = config.BackendNative
	_, err = New(cfg, Options{}, Deps{Provider: pageSet(1)})
	assert.Error(t, err)

	cfg.Backend = "webview"
	_, err = New(cfg, Options{}, Deps{Provider: pageSet(1)})
	assert.ErrorIs(t, err, config.ErrInvalidBackend)
}

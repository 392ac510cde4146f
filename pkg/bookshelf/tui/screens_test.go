package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScreensBookListSelects(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := NewScreens(WithContext(ctx), WithIO(strings.NewReader("j\r"), io.Discard))
	res, err := s.BookList(router.BookListInput{State: session.New(catalog.Default())})

	require.NoError(t, err)
	assert.Equal(t, router.BookListActionSelected, res.Action)
	require.NotNil(t, res.Selected)
	assert.Equal(t, "Brave New World", res.Selected.Title)
}

func TestScreensCancelledContextExits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScreens(WithContext(ctx), WithIO(strings.NewReader(""), io.Discard))
	book, _ := catalog.Default().Book(1)
	res, err := s.BookDetail(router.BookDetailInput{Book: book})

	require.NoError(t, err)
	assert.Equal(t, router.BookDetailActionExit, res.Action)
}

func TestRouterOverTerminalScreens(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess := session.New(catalog.Default())
	screens := &scriptedScreens{
		Screens: NewScreens(WithContext(ctx)),
		inputs:  []string{"\r", "b", "q"},
	}

	require.NoError(t, router.New(sess, screens).Run(ctx))
	assert.Equal(t, session.BookList{}, sess.Screen())
	assert.Empty(t, screens.inputs)
}

// scriptedScreens feeds each screen its own input so every program sees a
// fresh reader.
type scriptedScreens struct {
	*Screens
	inputs []string
}

func (s *scriptedScreens) next() *Screens {
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return NewScreens(WithContext(s.ctx), WithIO(strings.NewReader(in), io.Discard))
}

func (s *scriptedScreens) BookList(in router.BookListInput) (router.BookListResult, error) {
	return s.next().BookList(in)
}

func (s *scriptedScreens) BookDetail(in router.BookDetailInput) (router.BookDetailResult, error) {
	return s.next().BookDetail(in)
}

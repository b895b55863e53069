package wizard

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsWithDefaultForm(t *testing.T) {
	s := NewStore()

	d := s.Get("s1")
	assert.Equal(t, 0, d.Step)
	assert.Equal(t, "idea", d.CurrentStep().ID)
	assert.Equal(t, DefaultForm(), d.Form)
	assert.Equal(t, 1, s.Count())
}

func TestStoreStepBounds(t *testing.T) {
	s := NewStore()

	_, err := s.Back("s1")
	assert.ErrorIs(t, err, ErrStepOutOfRange)

	for i := 1; i < len(Steps); i++ {
		d, completed, err := s.Next("s1", nil)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, i, d.Step)
	}

	d := s.Get("s1")
	assert.True(t, d.IsLastStep())
	assert.Equal(t, "Publish", d.CurrentStep().Name)

	_, _, err = s.Next("s1", nil)
	assert.ErrorIs(t, err, ErrStepOutOfRange)

	d, err = s.Back("s1")
	require.NoError(t, err)
	assert.Equal(t, len(Steps)-2, d.Step)
}

func TestStoreNextCompletes(t *testing.T) {
	s := NewStore()
	for i := 1; i < len(Steps); i++ {
		_, _, err := s.Next("s1", nil)
		require.NoError(t, err)
	}

	failure := errors.New("catalog unavailable")
	d, completed, err := s.Next("s1", func(Form) error { return failure })
	assert.ErrorIs(t, err, failure)
	assert.False(t, completed)
	assert.True(t, d.IsLastStep(), "a failed completion keeps the draft")

	var got Form
	d, completed, err = s.Next("s1", func(f Form) error {
		got = f
		return nil
	})
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, "EcoBottle Pro 500ml", got.Name)
	assert.Equal(t, 0, d.Step, "completion starts a fresh draft")
}

func TestStoreApplySuggestion(t *testing.T) {
	tests := []struct {
		name       string
		suggestion Suggestion
		want       Form
	}{
		{
			name:       "zero values keep the form",
			suggestion: Suggestion{},
			want:       DefaultForm(),
		},
		{
			name:       "capacity only",
			suggestion: Suggestion{Capacity: 750},
			want: func() Form {
				f := DefaultForm()
				f.Capacity = 750
				return f
			}(),
		},
		{
			name:       "all specs",
			suggestion: Suggestion{Capacity: 750, Height: 180, Width: 120, Depth: 80},
			want: func() Form {
				f := DefaultForm()
				f.Capacity, f.Height, f.Width, f.Depth = 750, 180, 120, 80
				return f
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			d := s.ApplySuggestion("s1", tt.suggestion)
			assert.Equal(t, tt.want, d.Form)
		})
	}
}

func TestStoreUpdateForm(t *testing.T) {
	s := NewStore()
	name := "  Bamboo Lunch Box "
	material := "bamboo"
	capacity := 900

	d, err := s.UpdateForm("s1", FormUpdate{Name: &name, Material: &material, Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, "Bamboo Lunch Box", d.Form.Name)
	assert.Equal(t, "bamboo", d.Form.Material)
	assert.Equal(t, 900, d.Form.Capacity)
	assert.Equal(t, 220.0, d.Form.Height)

	empty := ""
	negative := -1.0
	for _, u := range []FormUpdate{{Name: &empty}, {Material: &empty}, {Depth: &negative}} {
		_, err := s.UpdateForm("s1", u)
		assert.ErrorIs(t, err, ErrInvalidForm)
	}
	assert.Equal(t, "Bamboo Lunch Box", s.Get("s1").Form.Name)

	s.Reset("s1")
	assert.Equal(t, DefaultForm(), s.Get("s1").Form)
}

func TestStoreConcurrentSessions(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 3; i++ {
				_, _, _ = s.Next(id, nil)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 4, s.Count())
	assert.Equal(t, 3, s.Get("c").Step)
}

package paradigm

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/paradigm/internal/domain"
)

func forEachParadigm(t *testing.T, fn func(t *testing.T, p Paradigm)) {
	t.Helper()
	for _, p := range Default().All() {
		t.Run(p.Name(), func(t *testing.T) { fn(t, p) })
	}
}

func TestTransform_EndToEnd(t *testing.T) {
	names := []string{"toto", "bob", "titi"}
	cases := []struct {
		style domain.Style
		want  string
	}{
		{domain.StyleAsciidoc, "* toto\n* BOB\n* titi"},
		{domain.StyleMarkdown, "- toto\n- BOB\n- titi"},
	}

	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		for _, c := range cases {
			got, err := p.Transform(names, c.style)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "style %s", c.style)
		}
	})
}

func TestTransform_Empty(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		for _, s := range domain.Styles() {
			got, err := p.Transform([]string{}, s)
			require.NoError(t, err)
			assert.Equal(t, "", got)

			got, err = p.Transform(nil, s)
			require.NoError(t, err)
			assert.Equal(t, "", got)
		}
	})
}

func TestTransform_SingleElementHasNoSeparator(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		for _, s := range domain.Styles() {
			for _, x := range []string{"bob", "Bob", "alice", ""} {
				got, err := p.Transform([]string{x}, s)
				require.NoError(t, err)
				assert.Equal(t, s.FormatItem(domain.FormatName(x)), got)
				assert.NotContains(t, got, "\n")
			}
		}
	})
}

func TestTransform_PreservesOrder(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		got, err := p.Transform([]string{"b", "a"}, domain.StyleMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "- b\n- a", got)
		assert.Equal(t, 1, strings.Count(got, "\n"))
	})
}

func TestTransform_EmptyNamesInTheMiddle(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		got, err := p.Transform([]string{"", "bob", ""}, domain.StyleAsciidoc)
		require.NoError(t, err)
		assert.Equal(t, "* \n* BOB\n* ", got)
	})
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		names := []string{"bob", "toto"}
		_, err := p.Transform(names, domain.StyleAsciidoc)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "toto"}, names)
	})
}

func TestTransform_InvalidStyle(t *testing.T) {
	forEachParadigm(t, func(t *testing.T, p Paradigm) {
		for _, s := range []domain.Style{"", "html"} {
			got, err := p.Transform([]string{"bob"}, s)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
		}
	})
}

func TestTransform_ParadigmsAgree(t *testing.T) {
	inputs := [][]string{
		nil,
		{"bob"},
		{"BOB", "Bob", "bob"},
		{"a", "", "b", "bob", "c"},
	}
	all := Default().All()
	for _, in := range inputs {
		for _, s := range domain.Styles() {
			want, err := all[0].Transform(in, s)
			require.NoError(t, err)
			for _, p := range all[1:] {
				got, err := p.Transform(in, s)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s disagrees on %q/%s", p.Name(), in, s)
			}
		}
	}
}

func TestTransform_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := Default().All()[i%3]
			name := fmt.Sprintf("n%d", i)
			got, err := p.Transform([]string{name, "bob"}, domain.StyleAsciidoc)
			assert.NoError(t, err)
			assert.Equal(t, "* "+name+"\n* BOB", got)
		}(i)
	}
	wg.Wait()
}

func TestProcedural_FlagSelectsMarker(t *testing.T) {
	p := Procedural{}
	assert.Equal(t, "* toto", p.transform([]string{"toto"}, true))
	assert.Equal(t, "- toto", p.transform([]string{"toto"}, false))
}

func TestObject_CapabilityLookup(t *testing.T) {
	assert.IsType(t, bobFormat{}, nameFormatterFor("bob"))
	assert.IsType(t, standardFormat{}, nameFormatterFor("Bob"))

	out, err := outputFormatFor(domain.StyleMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "- x", out.FormatList("x"))

	_, err = outputFormatFor("")
	assert.Error(t, err)
}

func TestFunctional_MapDoesNotMutate(t *testing.T) {
	in := []string{"bob"}
	out := Map(domain.FormatName)(in)
	assert.Equal(t, []string{"BOB"}, out)
	assert.Equal(t, []string{"bob"}, in)
}

func TestFunctional_Pipe(t *testing.T) {
	got := Pipe(Map(strings.ToUpper), Map(func(s string) string { return s + "!" }))(
		[]string{"a", "b"}, Join(","))
	assert.Equal(t, "A!,B!", got)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"procedural", "object", "functional"}, Default().Names())
}

func TestRegistry_Lookup(t *testing.T) {
	r := Default()

	p, err := r.Lookup(" Functional ")
	require.NoError(t, err)
	assert.Equal(t, "functional", p.Name())

	_, err = r.Lookup("logic")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "procedural|object|functional")
}

func TestRegistry_DuplicateKeepsPosition(t *testing.T) {
	r := NewRegistry(Procedural{}, Object{}, Procedural{})
	assert.Equal(t, []string{"procedural", "object"}, r.Names())
	assert.Len(t, r.All(), 2)
}

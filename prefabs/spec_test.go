package prefabs

import (
	"image/color"
	"testing"

	"github.com/milk9111/pong/match"
	"gopkg.in/yaml.v3"
)

func TestLoadMatchSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadMatchSpec("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "classic" {
		t.Fatalf("expected classic prefab, got %q", spec.Name)
	}
	if got := spec.Rules(); got != match.DefaultRules() {
		t.Fatalf("expected embedded prefab to equal default rules:\n got %+v\nwant %+v", got, match.DefaultRules())
	}
	if spec.Opponent.Script != "opponent.tengo" {
		t.Fatalf("expected tengo opponent script, got %q", spec.Opponent.Script)
	}
	if got := spec.Palette.Background.Or(color.Black); got != (color.NRGBA{R: 0x0c, G: 0x2e, B: 0x4e, A: 0xff}) {
		t.Fatalf("unexpected background %v", got)
	}
}

func TestRulesKeepDefaultsForOmittedFields(t *testing.T) {
	var spec MatchSpec
	if err := yaml.Unmarshal([]byte("win_score: 3\nball:\n  size: 10\n"), &spec); err != nil {
		t.Fatal(err)
	}
	r := spec.Rules()
	want := match.DefaultRules()
	want.WinScore = 3
	want.BallSize = 10
	if r != want {
		t.Fatalf("got %+v want %+v", r, want)
	}
}

func TestRulesKeepExplicitZeros(t *testing.T) {
	src := `
paddle:
  inset: 0
opponent:
  dead_zone: 0
  recenter_dead_zone: 0
ball:
  opening_dy: 0
  serve_spread: 0
  deflection_noise: 0
`
	var spec MatchSpec
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatal(err)
	}
	r := spec.Rules()
	want := match.DefaultRules()
	want.PaddleInset = 0
	want.DeadZone = 0
	want.RecenterDeadZone = 0
	want.OpeningDY = 0
	want.ServeSpread = 0
	want.DeflectionNoise = 0
	if r != want {
		t.Fatalf("got %+v want %+v", r, want)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected zero tuning to validate: %v", err)
	}
}

func TestLoadMatchSpecMissing(t *testing.T) {
	if _, err := LoadMatchSpec("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want color.NRGBA
		err  bool
	}{
		{"rgb", `"#ffdd00"`, color.NRGBA{R: 0xff, G: 0xdd, A: 0xff}, false},
		{"rgba", `"#ffffff55"`, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x55}, false},
		{"no_hash", `"00aaff"`, color.NRGBA{G: 0xaa, B: 0xff, A: 0xff}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"bad_hex", `"#gg0000"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.err {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"opponent.tengo", "scripts/opponent.lua", "prefabs/scripts/opponent.tengo"} {
		if data, err := LoadScript(name); err != nil || len(data) == 0 {
			t.Fatalf("%s: expected embedded script, got err=%v", name, err)
		}
	}
}

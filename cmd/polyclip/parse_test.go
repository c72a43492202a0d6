package main

import (
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestParsePolygon(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []vec.Vec2
	}{
		{
			name:  "plain",
			input: "0,0;2,0;2,2;0,2",
			want: []vec.Vec2{
				{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
			},
		},
		{
			name:  "whitespace_and_fractions",
			input: "1.5, 1.25; 7.5 ,2.5; 4,3 ; 4.5,6.5",
			want: []vec.Vec2{
				{X: 1.5, Y: 1.25}, {X: 7.5, Y: 2.5}, {X: 4, Y: 3}, {X: 4.5, Y: 6.5},
			},
		},
		{
			name:  "negative",
			input: "-1,-0.5; 5,4.5; 5,5.5",
			want: []vec.Vec2{
				{X: -1, Y: -0.5}, {X: 5, Y: 4.5}, {X: 5, Y: 5.5},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePolygon(tc.input)
			if err != nil {
				t.Fatalf("parsePolygon: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d vertices, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("vertex %d: got (%g, %g), want (%g, %g)",
						i, got[i].X, got[i].Y, tc.want[i].X, tc.want[i].Y)
				}
			}
		})
	}
}

func TestParsePolygonErrors(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1,2;3",
		"1,2;3,4,5",
		"a,b;c,d",
		"1,2;;3,4",
	}
	for _, input := range inputs {
		if _, err := parsePolygon(input); err == nil {
			t.Errorf("parsePolygon(%q): expected error", input)
		}
	}
}

func TestDefaultPolygons(t *testing.T) {
	for _, s := range []string{defaultSubject, defaultClip} {
		points, err := parsePolygon(s)
		if err != nil {
			t.Fatalf("parsePolygon(%q): %v", s, err)
		}
		if len(points) < 3 {
			t.Fatalf("default polygon %q has %d vertices", s, len(points))
		}
	}
}

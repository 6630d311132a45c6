package export

import (
	"reflect"
	"testing"

	"github.com/kando-74/cartas/scene"
)

func TestLayoutRoundTrips(t *testing.T) {
	tpl := testTemplate()
	artifact, err := Layout(tpl)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if artifact.Filename != "print-me.json" {
		t.Fatalf("filename = %q", artifact.Filename)
	}
	got, err := scene.DecodeLayout(artifact.Data)
	if err != nil {
		t.Fatalf("DecodeLayout: %v", err)
	}
	if !reflect.DeepEqual(got, tpl) {
		t.Fatalf("round trip changed the template")
	}
}

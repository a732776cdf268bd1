package hostinfo

import "testing"

func TestGet(t *testing.T) {
	info, err := Get()
	if err != nil {
		t.Fatal(err)
	}
	if info.OS == "" {
		t.Fatal("Get returned empty OS")
	}
	if info.String() == "unknown" {
		t.Fatalf("String() = %q for populated info", info.String())
	}
}

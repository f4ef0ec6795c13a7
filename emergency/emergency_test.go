package emergency

import "testing"

func TestDirectoryPopulated(t *testing.T) {
	d := GetDirectory()
	if len(d.Hospitals) == 0 || len(d.PoliceStations) == 0 || len(d.FireStations) == 0 || len(d.Pharmacies) == 0 {
		t.Fatal("directory has an empty section")
	}
	for _, h := range d.Hospitals {
		if h.ID == "" || h.Name == "" || h.Phone == "" {
			t.Fatalf("incomplete hospital record: %+v", h)
		}
	}
}

func TestHelplines(t *testing.T) {
	d := GetDirectory()
	for _, k := range []string{"police", "fire", "ambulance", "tourist"} {
		if d.Helplines[k] == "" {
			t.Fatalf("missing helpline %q", k)
		}
	}
	if d.Helplines["ambulance"] != "108" {
		t.Fatalf("ambulance = %q, want 108", d.Helplines["ambulance"])
	}
}

package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmigpin/pointcloud/pcloud"
)

func tmpCloudFile(t *testing.T, content string) *CloudFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewCloudFile(path)
}

func TestCloudFileLoad(t *testing.T) {
	cf := tmpCloudFile(t, "# a comment\n0.5 -1\n\n  2 3.25  \n")
	pts, err := cf.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []pcloud.Point{pcloud.P(0.5, -1), pcloud.P(2, 3.25)}
	if len(pts) != len(want) {
		t.Fatalf("got %v points: %v", len(pts), pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("point %v: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestCloudFileLoadErrors(t *testing.T) {
	for _, content := range []string{
		"1 2 3\n",
		"1\n",
		"a b\n",
		"1 b\n",
	} {
		cf := tmpCloudFile(t, content)
		if _, err := cf.Load(); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestCloudFileSaveLoad(t *testing.T) {
	cf := tmpCloudFile(t, "")
	want := []pcloud.Point{pcloud.P(0, 0), pcloud.P(-1.5, 12), pcloud.P(0.125, -0.25)}
	if err := cf.Save(want); err != nil {
		t.Fatal(err)
	}
	pts, err := cf.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != len(want) {
		t.Fatalf("got %v points: %v", len(pts), pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("point %v: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestCloudFileWatch(t *testing.T) {
	cf := tmpCloudFile(t, "0 0\n")
	events := make(chan interface{}, 8)
	if err := cf.Watch(events); err != nil {
		t.Fatal(err)
	}
	defer cf.Close()

	if err := os.WriteFile(cf.Path, []byte("1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*CloudFileChange); ok {
				return
			}
		case <-timeout:
			t.Fatal("no change event")
		}
	}
}

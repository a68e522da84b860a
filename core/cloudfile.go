package core

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/jmigpin/pointcloud/pcloud"
)

// CloudFile loads and saves a point file, one "x y" pair per line, and can
// watch it for external rewrites.
type CloudFile struct {
	Path string

	w *fsnotify.Watcher
}

func NewCloudFile(path string) *CloudFile {
	return &CloudFile{Path: path}
}

// Load parses the file. Blank lines and lines starting with '#' are
// skipped.
func (cf *CloudFile) Load() ([]pcloud.Point, error) {
	b, err := os.ReadFile(cf.Path)
	if err != nil {
		return nil, err
	}
	var pts []pcloud.Point
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		f := strings.Fields(s)
		if len(f) != 2 {
			return nil, errors.Errorf("%v:%v: expected 2 fields, got %v", cf.Path, line, len(f))
		}
		x, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%v:%v", cf.Path, line)
		}
		y, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%v:%v", cf.Path, line)
		}
		pts = append(pts, pcloud.P(x, y))
	}
	return pts, sc.Err()
}

func (cf *CloudFile) Save(pts []pcloud.Point) error {
	buf := &bytes.Buffer{}
	for _, p := range pts {
		fmt.Fprintf(buf, "%v %v\n", p.X, p.Y)
	}
	if err := os.WriteFile(cf.Path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "cloudfile save")
	}
	return nil
}

//----------

// CloudFileChange is posted into the app events channel when another
// program rewrites the watched file.
type CloudFileChange struct{}

func (cf *CloudFile) Watch(events chan<- interface{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "cloudfile watch")
	}
	if err := w.Add(cf.Path); err != nil {
		w.Close()
		return errors.Wrap(err, "cloudfile watch")
	}
	cf.w = w
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) > 0 {
					events <- &CloudFileChange{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				events <- err
			}
		}
	}()
	return nil
}

func (cf *CloudFile) Close() error {
	if cf.w != nil {
		return cf.w.Close()
	}
	return nil
}

package gtfs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// Source is one feed: a directory or a GTFS zip archive
type Source struct {
	Path string
	zr   *zip.ReadCloser
}

// OpenSource opens a feed directory or a .zip archive. Directories are not
// checked up front; a missing file surfaces when it is opened.
func OpenSource(p string) (*Source, error) {
	if !strings.EqualFold(filepath.Ext(p), ".zip") {
		return &Source{Path: p}, nil
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open feed archive %s: %w", p, err)
	}
	glog.V(1).Infof("Opened feed archive %s (%d entries)", p, len(zr.File))
	return &Source{Path: p, zr: zr}, nil
}

// Close releases the archive, if any
func (s *Source) Close() error {
	if s.zr == nil {
		return nil
	}
	zr := s.zr
	s.zr = nil
	return zr.Close()
}

// StopTimes opens stop_times.txt and consumes its header line
func (s *Source) StopTimes() (*StopTimeReader, error) {
	rc, name, err := s.open(StopTimesFile)
	if err != nil {
		return nil, err
	}
	r := &StopTimeReader{csvReaderCloser: newCsvReaderCloser(rc, name)}
	if _, err := r.read(); err != nil && err != io.EOF {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Stops opens stops.txt
func (s *Source) Stops() (*StopReader, error) {
	rc, name, err := s.open(StopsFile)
	if err != nil {
		return nil, err
	}
	return &StopReader{csvReaderCloser: newCsvReaderCloser(rc, name)}, nil
}

func (s *Source) open(file string) (io.ReadCloser, string, error) {
	if s.zr == nil {
		name := filepath.Join(s.Path, file)
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		glog.V(1).Infof("Opened %s", name)
		return f, name, nil
	}
	for _, f := range s.zr.File {
		if strings.EqualFold(path.Base(f.Name), file) {
			rc, err := f.Open()
			name := s.Path + "!" + f.Name
			if err != nil {
				return nil, name, fmt.Errorf("open %s: %w", name, err)
			}
			glog.V(1).Infof("Opened %s", name)
			return rc, name, nil
		}
	}
	return nil, s.Path, fmt.Errorf("%s: %s not found in archive: %w", s.Path, file, os.ErrNotExist)
}

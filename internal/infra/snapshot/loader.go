package snapshot

import (
	"io"
	"os"

	"course-sectioning/internal/domain/offering"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errs.New("invalid snapshot document")

// Document is the YAML form of a snapshot: offerings followed by students.
type Document struct {
	Offerings []OfferingDocument `yaml:"offerings"`
	Students  []*student.Student `yaml:"students"`
}

type OfferingDocument struct {
	ID            int64                    `yaml:"id"`
	Name          string                   `yaml:"name"`
	WaitList      bool                     `yaml:"waitlist"`
	Courses       []*offering.Course       `yaml:"courses"`
	Configs       []*offering.Config       `yaml:"configs"`
	Distributions []*offering.Distribution `yaml:"distributions"`
	Reservations  []*offering.Reservation  `yaml:"reservations"`
}

func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "decode snapshot"), ErrInvalidDocument)
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open snapshot %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Apply validates every offering and loads the document into the server.
func (d *Document) Apply(s *Server) error {
	for _, o := range d.Offerings {
		off, err := offering.NewOffering(offering.Params{
			ID:            o.ID,
			Name:          o.Name,
			WaitList:      o.WaitList,
			Courses:       o.Courses,
			Configs:       o.Configs,
			Distributions: o.Distributions,
			Reservations:  o.Reservations,
		})
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "offering %d", o.ID), ErrInvalidDocument)
		}
		s.PutOffering(off)
	}
	for _, st := range d.Students {
		if st == nil || st.ID == 0 {
			return errs.Mark(errs.New("student without id"), ErrInvalidDocument)
		}
		s.PutStudent(st)
	}
	return nil
}

// LoadInto reads the YAML snapshot at path into the server.
func LoadInto(s *Server, path string) error {
	doc, err := LoadFile(path)
	if err != nil {
		return err
	}
	return doc.Apply(s)
}

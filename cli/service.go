package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/catalog/namespace"
	"io"
)

const nullLiteral = "null"

var (
	errNoSource     = errors.New("nscodec: either --input or --level is required")
	errNullWithUUID = errors.New("nscodec: cannot attach uuid to null namespace")
)

// Service loads, tags and writes namespaces.
type Service struct {
	options *Options
	fs      afs.Service
	newUUID func() string
}

// Run writes the canonical namespace document to the configured output or to stdout.
func (s *Service) Run(ctx context.Context, stdout io.Writer) error {
	ns, err := s.load(ctx)
	if err != nil {
		return err
	}
	if ns, err = s.tag(ns); err != nil {
		return err
	}
	text := nullLiteral
	if ns != nil {
		if text, err = namespace.ToJSONString(ns, s.options.Pretty); err != nil {
			return err
		}
	}
	if s.options.OutputURL == "" {
		_, err = fmt.Fprintln(stdout, text)
		return err
	}
	if err = s.fs.Upload(ctx, s.options.OutputURL, file.DefaultFileOsMode, bytes.NewReader([]byte(text))); err != nil {
		return fmt.Errorf("failed to write %v: %w", s.options.OutputURL, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context) (*namespace.Namespace, error) {
	if s.options.InputURL != "" {
		if len(s.options.Levels) > 0 {
			return nil, errors.New("nscodec: --input and --level are mutually exclusive")
		}
		data, err := s.fs.DownloadWithURL(ctx, s.options.InputURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", s.options.InputURL, err)
		}
		ns, err := namespace.FromJSONBytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %v: %w", s.options.InputURL, err)
		}
		return ns, nil
	}
	if len(s.options.Levels) == 0 {
		return nil, errNoSource
	}
	return namespace.Of(s.options.Levels...)
}

func (s *Service) tag(ns *namespace.Namespace) (*namespace.Namespace, error) {
	explicit := s.options.UUID != nil
	if !explicit && !s.options.AssignUUID {
		return ns, nil
	}
	if ns == nil {
		return nil, errNullWithUUID
	}
	if explicit {
		return ns.WithUUID(*s.options.UUID), nil
	}
	if ns.HasUUID() {
		return ns, nil
	}
	return ns.WithUUID(s.newUUID()), nil
}

// New creates a Service backed by the default afs storage registry.
func New(options *Options) *Service {
	return &Service{
		options: options,
		fs:      afs.New(),
		newUUID: uuid.NewString,
	}
}


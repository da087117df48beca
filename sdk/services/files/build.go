// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

// BuildOption sets optional fields that never come from positional args.
type BuildOption func(*buildOptions)

type buildOptions struct {
	destination string
	parentID    string
	format      string
}

// WithDestination sets Download.Destination and DownloadMultiple.Destination.
func WithDestination(dst string) BuildOption {
	return func(o *buildOptions) { o.destination = dst }
}

// WithParent sets ListFiles.ParentID.
func WithParent(id string) BuildOption {
	return func(o *buildOptions) { o.parentID = id }
}

// WithFormat sets the output format of ListFiles and StorageUsage.
func WithFormat(format string) BuildOption {
	return func(o *buildOptions) { o.format = format }
}

// Build validates the positional arguments of a command and returns the
// matching request. It has no side effects.
func Build(kind Kind, args []string, opts ...BuildOption) (Request, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindDownload:
		id, err := single(kind, args, true)
		if err != nil {
			return nil, err
		}
		return Download{FileID: id, Destination: o.destination}, nil

	case KindListFiles:
		if err := none(kind, args); err != nil {
			return nil, err
		}
		return ListFiles{ParentID: o.parentID, Format: o.format}, nil

	case KindMakeDir:
		name, err := single(kind, args, true)
		if err != nil {
			return nil, err
		}
		return MakeDir{Dirname: name}, nil

	case KindUpload:
		// existence is checked when the file is opened at dispatch
		p, err := single(kind, args, false)
		if err != nil {
			return nil, err
		}
		return Upload{LocalPath: p}, nil

	case KindDelete:
		id, err := single(kind, args, true)
		if err != nil {
			return nil, err
		}
		return Delete{FileID: id}, nil

	case KindStorageUsage:
		if err := none(kind, args); err != nil {
			return nil, err
		}
		return StorageUsage{Format: o.format}, nil

	case KindDownloadMultiple:
		ids, err := atLeastOne(kind, args)
		if err != nil {
			return nil, err
		}
		return DownloadMultiple{FileIDs: ids, Destination: o.destination}, nil

	case KindView:
		id, err := single(kind, args, true)
		if err != nil {
			return nil, err
		}
		return View{FileID: id}, nil
	}

	return nil, &ValidationError{Kind: kind, Reason: ErrUnknownKind}
}

func single(kind Kind, args []string, nonEmpty bool) (string, error) {
	if len(args) != 1 {
		return "", &ValidationError{Kind: kind, Reason: ErrWrongArgCount, Want: 1, Got: len(args)}
	}
	if nonEmpty && args[0] == "" {
		return "", &ValidationError{Kind: kind, Reason: ErrEmptyArgument}
	}
	return args[0], nil
}

func none(kind Kind, args []string) error {
	if len(args) != 0 {
		return &ValidationError{Kind: kind, Reason: ErrWrongArgCount, Want: 0, Got: len(args)}
	}
	return nil
}

// atLeastOne reports a missing argument as WrongArgCount with Want 1.
func atLeastOne(kind Kind, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, &ValidationError{Kind: kind, Reason: ErrWrongArgCount, Want: 1, Got: 0}
	}
	for _, a := range args {
		if a == "" {
			return nil, &ValidationError{Kind: kind, Reason: ErrEmptyArgument}
		}
	}
	return append([]string(nil), args...), nil
}

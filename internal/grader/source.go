package grader

// SourceKind tells how the HTML content of a Source is obtained.
type SourceKind int

const (
	// SourceLocal is a file on the local file system, read synchronously.
	SourceLocal SourceKind = iota
	// SourceRemote is a URL, fetched over the network.
	SourceRemote
)

func (k SourceKind) String() string {
	if k == SourceRemote {
		return "remote"
	}

	return "local"
}

// Source describes where the HTML document comes from. It is resolved once
// per run.
type Source struct {
	Kind     SourceKind
	Location string
}

// Resolve classifies arg: an existing local file is SourceLocal, anything
// else is treated as a URL.
func Resolve(arg string) Source {
	if IsLocalFile(arg) {
		return Source{Kind: SourceLocal, Location: arg}
	}

	return Source{Kind: SourceRemote, Location: arg}
}

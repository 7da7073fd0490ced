package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

// FileSystem abstracts file access so components never touch the disk
// directly. Paths starting with "~" are resolved against the user's home
// directory by the adapter.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
}

package ports

// Keyring stores small secrets in the operating system keyring.
type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	DeleteKey(keyName string) error
	HasKey(keyName string) (bool, error)
}

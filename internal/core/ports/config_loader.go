package ports

// DeclarationStore reads and writes the declaration file of a scope.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type DeclarationStore interface {
	// Load returns the exact declaration file text of scopeDir.
	// It returns domain.ErrDeclarationFileNotFound when the scope has no declaration file.
	Load(scopeDir string) (string, error)

	// Save replaces the declaration file of scopeDir with text.
	Save(scopeDir, text string) error
}

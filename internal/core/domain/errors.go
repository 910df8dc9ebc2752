package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDeclaration is returned when a declaration file line is not of the form "name version".
	ErrInvalidDeclaration = zerr.New("invalid dependency declaration")

	// ErrPackageNotFound is returned when a declared package is absent from the version index.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrVersionNotFound is returned when no indexed version satisfies a specifier.
	ErrVersionNotFound = zerr.New("no matching version found")

	// ErrInstallFailed is returned when the package installer fails for a dependency.
	ErrInstallFailed = zerr.New("failed to install package")

	// ErrIndexLoadFailed is returned when the version index cannot be read or decoded.
	ErrIndexLoadFailed = zerr.New("failed to load version index")

	// ErrLockfileMarshalFailed is returned when a lockfile cannot be encoded.
	ErrLockfileMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockfileWriteFailed is returned when a lockfile cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrDeclarationFileNotFound is returned when a scope has no declaration file.
	ErrDeclarationFileNotFound = zerr.New("no deps file found, run 'deps init' first")

	// ErrDeclarationFileExists is returned by init when the declaration file already exists.
	ErrDeclarationFileExists = zerr.New("deps file already exists")

	// ErrDeclarationReadFailed is returned when the declaration file cannot be read.
	ErrDeclarationReadFailed = zerr.New("failed to read deps file")

	// ErrDeclarationWriteFailed is returned when the declaration file cannot be written.
	ErrDeclarationWriteFailed = zerr.New("failed to write deps file")

	// ErrDependencyNotDeclared is returned when removing a package that is not declared.
	ErrDependencyNotDeclared = zerr.New("dependency not declared")

	// ErrScopeResolveFailed is returned when a scope directory cannot be made absolute.
	ErrScopeResolveFailed = zerr.New("failed to resolve scope directory")

	// ErrSettingsLoadFailed is returned when the settings file cannot be read.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrShellFailed is returned when the interactive shell exits abnormally.
	ErrShellFailed = zerr.New("shell exited with error")

	// ErrUnknownOutputFormat is returned for an unsupported list output format.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected 'text', 'json' or 'yaml'")
)

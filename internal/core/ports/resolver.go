package ports

import "go.trai.ch/deps/internal/core/domain"

// Resolver pins declarations to concrete versions from the version index.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type Resolver interface {
	// Resolve pins a single declaration. The returned dependency has no install location.
	Resolve(decl domain.Declaration) (domain.ResolvedDependency, error)

	// ResolveAll resolves declarations in order and stops at the first failure.
	ResolveAll(decls []domain.Declaration) ([]domain.ResolvedDependency, error)
}

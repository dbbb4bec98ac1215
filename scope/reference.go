// Copyright © 2026 The escope authors

package scope

import (
	"fmt"

	"github.com/estools-go/escope/ast"
)

// Access classifies how a reference touches its name.
type Access int

const (
	Read Access = 1 << iota
	Write

	ReadWrite = Read | Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	case ReadWrite:
		return "read-write"
	}
	return fmt.Sprintf("invalid-access-%d", int(a))
}

// A Reference is a single use of an identifier inside a scope.
type Reference struct {
	// Identifier is the referencing name node.
	Identifier *ast.Identifier

	// From is the scope the reference occurs in.
	From *Scope

	Access Access

	// WriteExpr is the expression whose value the reference writes,
	// nil for pure reads and for update expressions.
	WriteExpr ast.Node

	// Resolved is the variable the reference binds to. It stays nil for
	// free variables, names escaping through a with scope, and
	// implicit-global writes.
	Resolved *Variable

	// Init marks writes that initialize a declared binding (declarator
	// initializers, parameter defaults, for-in/of declaration lefts).
	Init bool

	// Partial marks writes whose target is one leaf of a larger
	// destructuring pattern, so the written value is not the whole
	// WriteExpr.
	Partial bool

	// ImplicitGlobalCandidate is the assignment or loop node that would
	// create an implicit global if the name is still unresolved when the
	// Global scope closes. It is set at reference creation, only for
	// writes born in non-strict scopes, and consulted only at Global
	// close.
	ImplicitGlobalCandidate ast.Node
}

// IsRead reports whether the reference reads its name.
func (r *Reference) IsRead() bool { return r.Access&Read != 0 }

// IsWrite reports whether the reference writes its name.
func (r *Reference) IsWrite() bool { return r.Access&Write != 0 }

// IsReadOnly reports whether the reference only reads.
func (r *Reference) IsReadOnly() bool { return r.Access == Read }

// IsWriteOnly reports whether the reference only writes.
func (r *Reference) IsWriteOnly() bool { return r.Access == Write }

// IsReadWrite reports whether the reference both reads and writes, as
// compound assignment and update expressions do.
func (r *Reference) IsReadWrite() bool { return r.Access == ReadWrite }

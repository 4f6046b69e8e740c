// Package compare answers whether a destination already holds what a sync plan
// would write, without writing anything.
//
// File equality is SHA-256 content equality. Existence is always checked
// explicitly: a missing file never hashes to anything. Directory equality
// enumerates both trees, maps source paths through the optional filter and
// rename, and then requires the destination to hold exactly the expected set.
package compare

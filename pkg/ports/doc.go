/*
Package ports defines the driven ports (interfaces) for storing generated documents.

These interfaces decouple the HTTP and MCP adapters from the storage backend, allowing
the same document API to write into the local output directory, process memory or Redis.

# Key Interfaces

  - DocumentStore: Responsible for saving, loading, deleting and listing LaTeX documents by name.
*/
package ports

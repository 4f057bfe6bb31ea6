// Package common wraps MCP tool handlers with instrumentation. The wrappers
// time each invocation and record tool and Drive operation metrics when a
// recorder is attached to the server context.
package common

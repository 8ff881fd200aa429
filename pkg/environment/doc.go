// Package environment names the deployment environments the service
// recognizes and carries the active one through context.Context.
package environment

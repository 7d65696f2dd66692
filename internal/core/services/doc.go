// Package services implements the core application logic, composing
// the pipeline stages behind the driving ports. Services depend only
// on domain types and driven-port interfaces, never on concrete
// adapters.
package services

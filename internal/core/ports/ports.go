// Package ports defines the interfaces between iconkit's core and its adapters.
package ports

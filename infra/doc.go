// Package infra contains technical adapters: model artifact loaders,
// holiday tables, metrics exporters and the MQTT report publisher. These
// packages depend only on the interfaces defined in the core packages.
package infra

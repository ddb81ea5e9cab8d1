// Package config provides functionality for loading and managing the ETREE CLI configuration.
//
// Settings are read from a YAML file through viper, overridden by ETREE_*
// environment variables and validated before use. The file names one
// database per target (DEV, PROD) so every verb can switch connections with
// the --db flag.
package config

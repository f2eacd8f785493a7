// Package config provides centralized configuration for the lote report tools.
//
// # Configuration Sources
//
// Values are resolved in increasing order of precedence:
//
//  1. Default()
//  2. A YAML file (config.yaml or configs/config.yaml)
//  3. A .env file in the working directory
//  4. Environment variables
//
// # Environment Variables
//
// Every variable is prefixed with UPSTREAM_ and follows the struct nesting:
//
//	UPSTREAM_SERVER_PORT=8080
//	UPSTREAM_DATA_FILE=/srv/data/Integrado.csv
//	UPSTREAM_DATA_ENCODING=windows-1252
//	UPSTREAM_REPORT_RESERVES_YEAR=2023
//	UPSTREAM_REPORT_PRODUCTION_YEARS=2021,2022,2023,2024,2025
//	UPSTREAM_LOGGING_LEVEL=debug
//	UPSTREAM_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return fmt.Errorf("load config: %w", err)
//	}
package config

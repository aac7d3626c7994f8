// Package config loads environment-backed defaults into typed structs.
//
// It wraps github.com/caarlos0/env with a one-time attempt to read a local
// .env file via github.com/joho/godotenv. The tool uses it for defaults that
// CLI flags override, such as the output directory and QR image size.
//
// # Usage
//
//	type Settings struct {
//		OutputDir string `env:"BATCHCODE_OUTPUT_DIR" envDefault:"./output"`
//		QRSize    int    `env:"BATCHCODE_QR_SIZE" envDefault:"256"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// handle error
//	}
package config

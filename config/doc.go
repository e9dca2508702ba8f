// SPDX-License-Identifier: EPL-2.0

// Package config reads the granulizer HCL configuration file.
//
//	asset = "samples/drone.ogg"
//
//	output {
//	  sample_rate = 44100
//	  channels    = 2
//	  buffer      = "40ms"
//	  volume      = 0.8
//	}
//
//	trigger {
//	  interval     = "120ms"
//	  max_position = 600
//	  seed         = 1
//	}
//
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
// Every block and attribute is optional; missing values take the defaults
// returned by Default.
package config

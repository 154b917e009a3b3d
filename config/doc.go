// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML job files read by the sigwave command.
//
// A job declares signals as lists of sinusoid components and the waves to
// sample from them:
//
//	log:
//	  level: debug
//	output:
//	  dir: plots
//	  prefix: chap01
//	signals:
//	  - name: mix
//	    components:
//	      - {kernel: cos, freq: 440, amp: 1.0}
//	      - {kernel: sin, freq: 880, amp: 0.5}
//	waves:
//	  - signal: mix
//	    framerate: 11025
//	    periods: 3
//	    normalize: 0.01
//	    wav: mix.wav
//
// Omitted values take the Default* constants. Parse rejects unknown keys
// and validates that every wave refers to a declared, buildable signal.
package config

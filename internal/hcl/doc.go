// Package hcl implements config.Loader for HCL configuration files.
//
// A configuration consists of `module` blocks keyed by module name plus an
// optional `working` template block:
//
//	module "greet" {
//	  flow = ["discord", "cron"]
//	  options {
//	    greeting = "hello"
//	  }
//	}
//
//	module "audit" {
//	  flow = "all"
//	}
//
//	working {
//	  prompt = ""
//	  vars   = { locale = "en" }
//	}
//
// Multiple files under the configured path are merged; a later file may
// override a module defined in an earlier one.
package hcl

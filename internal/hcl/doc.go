// Package hcl provides the HCL implementation of config.Loader.
//
// A configuration file may contain any number of these blocks:
//
//	path "input" {
//	  root = "src"
//	  css  = "styles"
//	  js   = ["vendor.js", "app.js"]
//	}
//
//	ext {
//	  css = "scss"
//	}
//
//	option "sass" {
//	  replace = false
//	  params = {
//	    output_style  = "compressed"
//	    include_paths = ["node_modules"]
//	  }
//	}
//
//	status {
//	  main_task = "build"
//	  watching  = false
//	}
//
// Expressions may call format, join, lower, upper and concat.
package hcl

// SPDX-License-Identifier: MPL-2.0

package toolchain

// DesktopTriple is the 64-bit macOS target used for local hot-reload builds.
const DesktopTriple Triple = "x86_64-apple-darwin"

// DesktopOverride returns the fixed override for DesktopTriple. It tunes
// code generation for the build machine and reserves Mach-O header space so
// the dylib install name can be rewritten after linking, which hot reloading
// a dylib without relinking depends on.
func DesktopOverride() Override {
	return Override{
		RustFlags: []string{
			"-C", "target-cpu=native",
			"-C", "link-arg=-headerpad_max_install_names",
		},
	}
}

// SPDX-License-Identifier: MPL-2.0

// Package cargo renders target overrides as a Cargo configuration file and
// writes it into the project.
//
// The output lives at <project>/.cargo/config and holds one
// [target.<triple>] table per target, in lexicographic triple order:
//
//	[target.aarch64-linux-android]
//	ar = '/ndk/toolchains/llvm/prebuilt/linux-x86_64/bin/llvm-ar'
//	linker = '/ndk/toolchains/llvm/prebuilt/linux-x86_64/bin/aarch64-linux-android24-clang'
//	rustflags = ['-C', 'link-arg=-landroid', '-C', 'link-arg=-llog']
//
// The generator owns this file. Every run rewrites it completely and any
// manual edits are lost; there is no merging with existing content.
package cargo

// SPDX-License-Identifier: MPL-2.0

// Package platform names host operating systems and architectures and maps
// them onto the directory layout of prebuilt cross toolchains.
package platform

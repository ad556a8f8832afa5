// SPDX-License-Identifier: MPL-2.0

// Package ios lists the iOS targets a project can build for and the Cargo
// overrides each one needs. Cargo drives Xcode's toolchain for Apple targets
// on its own, so none of them currently needs an override. The registry
// still feeds the builder, which prunes the empty entries, and the target
// listing.
package ios

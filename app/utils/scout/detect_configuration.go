// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scout

import (
	"context"
	"strings"

	"github.com/cloudzero/pacman/app/utils/scout/types"
)

// DetectIdentity provides an easy way to resolve the cloud identity when
// loading configuration. If a cloud is supplied, detection is elided and the
// supplied values are returned (an empty zone becomes unknown). Otherwise s is
// used to discover the identity; a nil s uses the default chain.
func DetectIdentity(ctx context.Context, s types.Scout, cloud, zone string) types.CloudIdentity {
	if cloud = strings.TrimSpace(cloud); cloud != "" {
		id := types.NewCloudIdentity(types.CloudProvider(cloud), zone)
		if id.Zone == "" {
			id.Zone = types.ZoneUnknown
		}
		return id
	}

	if s == nil {
		s = NewScout()
	}
	return s.Discover(ctx)
}

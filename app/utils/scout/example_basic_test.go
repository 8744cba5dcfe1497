// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scout_test

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/cloudzero/pacman/app/utils/scout/auto"
	"github.com/cloudzero/pacman/app/utils/scout/types"
	"github.com/cloudzero/pacman/app/utils/scout/types/mocks"
)

// Example_basic demonstrates discovery over a chain of probes. Mock probes
// stand in for the metadata services to provide deterministic output.
func Example_basic() {
	ctrl := gomock.NewController(nil) // In real tests, pass testing.T
	defer ctrl.Finish()

	// the first probe fails, as it would outside of Kubernetes
	k8sProbe := mocks.NewMockProbe(ctrl)
	k8sProbe.EXPECT().Provider().Return(types.CloudProviderKubernetes).AnyTimes()
	k8sProbe.EXPECT().Probe(gomock.Any()).Return(types.CloudIdentity{}, types.ErrCredentialUnavailable)

	awsProbe := mocks.NewMockProbe(ctrl)
	awsProbe.EXPECT().Provider().Return(types.CloudProviderAWS).AnyTimes()
	awsProbe.EXPECT().Probe(gomock.Any()).Return(types.NewCloudIdentity(types.CloudProviderAWS, "us-east-1a\n"), nil)

	s := auto.NewScout([]types.Probe{k8sProbe, awsProbe})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := s.Discover(ctx)

	fmt.Printf("Cloud: %s\n", id.Cloud)
	fmt.Printf("Zone: %s\n", id.Zone)

	// Output:
	// Cloud: AWS
	// Zone: us-east-1a
}

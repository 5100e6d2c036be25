/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	AgeVerificationSvcComponent Component = "age-verification.service"
	WorkDirComponent            Component = "age-verification.work-dir"
	KeyProviderComponent        Component = "key-provider"
	ProverComponent             Component = "prover"
	ResultInterpreterComponent  Component = "result-interpreter"
	RegistryComponent           Component = "registry"
)

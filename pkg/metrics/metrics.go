// Copyright 2025 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	// ClubRegistrationsTotal counts club registration submissions by outcome
	ClubRegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_club_registrations_total",
			Help: "Total number of club registration submissions",
		},
		[]string{"outcome"},
	)

	// ClubReviewsTotal counts admin review decisions
	ClubReviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_club_reviews_total",
			Help: "Total number of club registration review decisions",
		},
		[]string{"decision"},
	)

	// HeadTransfersTotal counts completed club head transfers
	HeadTransfersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campus_club_head_transfers_total",
			Help: "Total number of completed club head transfers",
		},
	)

	// RoleSyncsTotal counts user role synchronizations by resulting role
	RoleSyncsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_role_syncs_total",
			Help: "Total number of user role synchronizations",
		},
		[]string{"role"},
	)

	// MembershipRequestsTotal counts membership request decisions
	MembershipRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_membership_requests_total",
			Help: "Total number of membership request operations",
		},
		[]string{"operation"},
	)
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(
		ClubRegistrationsTotal,
		ClubReviewsTotal,
		HeadTransfersTotal,
		RoleSyncsTotal,
		MembershipRequestsTotal,
	)
}

// Handler exposes the registry for the /metrics endpoint
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// GetRegistry returns the prometheus registry
func GetRegistry() *prometheus.Registry {
	return registry
}

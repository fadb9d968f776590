// Package seed holds the curated architecture content loaded into the store
// on first startup. IDs are minted here so a fresh database gets stable
// identifiers for its lifetime.
package seed

import (
	"github.com/google/uuid"

	"github.com/soyroberto/roblox/pkg/catalog"
)

// Components returns the architecture component records in journey order.
func Components() []catalog.ArchitectureComponent {
	return []catalog.ArchitectureComponent{
		{
			ID:          uuid.NewString(),
			Name:        "Global Load Balancer",
			Type:        catalog.LoadBalancer,
			Description: "Distributes 26M concurrent players across global regions",
			DetailedExplanation: "Roblox uses a multi-tier load balancing system with geographic distribution. " +
				"The global load balancer uses DNS-based routing and anycast to direct players to the nearest " +
				"regional data center. It handles health checks, failover, and capacity-based routing.",
			Technologies: []string{"HAProxy", "NGINX", "AWS ELB", "Cloudflare"},
			Protocols:    []string{"HTTP/2", "TCP", "DNS", "Anycast"},
			CapacityMetrics: catalog.Metrics{
				"requests_per_second":    2000000,
				"concurrent_connections": 26000000,
				"latency_ms":             50,
				"availability":           99.99,
			},
			Position:        catalog.Position{X: 100, Y: 100},
			Connections:     []catalog.ComponentType{catalog.CDN, catalog.APIGateway},
			DifficultyLevel: catalog.Intermediate,
			StepOrder:       1,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Content Delivery Network (CDN)",
			Type:        catalog.CDN,
			Description: "Caches game assets and reduces latency globally",
			DetailedExplanation: "Roblox's CDN network spans 200+ edge locations worldwide, caching game assets, " +
				"avatars, and static content. It uses intelligent routing, content optimization, and edge computing " +
				"to minimize latency for players.",
			Technologies: []string{"CloudFront", "Cloudflare", "Akamai", "Custom Edge Servers"},
			Protocols:    []string{"HTTP/2", "HTTP/3", "WebRTC", "UDP"},
			CapacityMetrics: catalog.Metrics{
				"edge_locations":            200,
				"cache_hit_ratio":           95,
				"bandwidth_tbps":            100,
				"asset_requests_per_second": 5000000,
			},
			Position:        catalog.Position{X: 300, Y: 100},
			Connections:     []catalog.ComponentType{catalog.LoadBalancer, catalog.Storage},
			DifficultyLevel: catalog.Beginner,
			StepOrder:       2,
		},
		{
			ID:          uuid.NewString(),
			Name:        "API Gateway",
			Type:        catalog.APIGateway,
			Description: "Routes requests to appropriate microservices",
			DetailedExplanation: "The API Gateway acts as a single entry point for all client requests, handling " +
				"authentication, rate limiting, request routing, and protocol translation. It implements circuit " +
				"breakers and retries for fault tolerance.",
			Technologies: []string{"Kong", "Envoy", "AWS API Gateway", "Custom Service Mesh"},
			Protocols:    []string{"HTTP/2", "gRPC", "WebSocket", "TCP"},
			CapacityMetrics: catalog.Metrics{
				"requests_per_second": 10000000,
				"services_managed":    500,
				"rate_limit_per_user": 1000,
				"response_time_ms":    10,
			},
			Position:        catalog.Position{X: 200, Y: 250},
			Connections:     []catalog.ComponentType{catalog.LoadBalancer, catalog.GameServer, catalog.Database},
			DifficultyLevel: catalog.Intermediate,
			StepOrder:       3,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Game Server Cluster",
			Type:        catalog.GameServer,
			Description: "Hosts individual game instances and player sessions",
			DetailedExplanation: "Roblox runs thousands of game servers across multiple regions. Each server can " +
				"handle 50-100 concurrent players per game instance. The system uses container orchestration, " +
				"auto-scaling, and intelligent placement to optimize performance.",
			Technologies: []string{"Kubernetes", "Docker", "Custom Game Engine", "Lua Runtime"},
			Protocols:    []string{"UDP", "TCP", "WebSocket", "Custom Protocol"},
			CapacityMetrics: catalog.Metrics{
				"servers_count":      50000,
				"players_per_server": 100,
				"games_hosted":       1000000,
				"cpu_utilization":    70,
			},
			Position:        catalog.Position{X: 400, Y: 350},
			Connections:     []catalog.ComponentType{catalog.APIGateway, catalog.Database, catalog.Cache, catalog.MessageQueue},
			DifficultyLevel: catalog.Advanced,
			StepOrder:       4,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Distributed Database",
			Type:        catalog.Database,
			Description: "Stores player data, game state, and metadata",
			DetailedExplanation: "Roblox uses a combination of SQL and NoSQL databases with horizontal sharding. " +
				"Player data is partitioned geographically, with read replicas for performance and master-slave " +
				"replication for consistency.",
			Technologies: []string{"MySQL", "MongoDB", "Redis", "Cassandra"},
			Protocols:    []string{"MySQL Protocol", "MongoDB Wire Protocol", "Redis Protocol"},
			CapacityMetrics: catalog.Metrics{
				"shards_count":      1000,
				"read_replicas":     5000,
				"writes_per_second": 500000,
				"reads_per_second":  2000000,
			},
			Position:        catalog.Position{X: 100, Y: 450},
			Connections:     []catalog.ComponentType{catalog.APIGateway, catalog.GameServer, catalog.Cache},
			DifficultyLevel: catalog.Advanced,
			StepOrder:       5,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Caching Layer",
			Type:        catalog.Cache,
			Description: "High-speed data access for frequent operations",
			DetailedExplanation: "Multi-tier caching system with L1 (application), L2 (Redis), and L3 (CDN) caches. " +
				"Implements cache warming, invalidation strategies, and consistent hashing for optimal performance.",
			Technologies: []string{"Redis Cluster", "Memcached", "Application Cache", "CDN Cache"},
			Protocols:    []string{"Redis Protocol", "Memcached Protocol", "HTTP"},
			CapacityMetrics: catalog.Metrics{
				"cache_nodes":           5000,
				"hit_ratio":             95,
				"operations_per_second": 10000000,
				"memory_tb":             100,
			},
			Position:        catalog.Position{X: 200, Y: 450},
			Connections:     []catalog.ComponentType{catalog.GameServer, catalog.Database, catalog.APIGateway},
			DifficultyLevel: catalog.Intermediate,
			StepOrder:       6,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Message Queue System",
			Type:        catalog.MessageQueue,
			Description: "Handles real-time events and cross-service communication",
			DetailedExplanation: "Event-driven architecture using message queues for decoupled communication. " +
				"Handles player actions, game events, and system notifications with guaranteed delivery and ordering.",
			Technologies: []string{"Apache Kafka", "RabbitMQ", "AWS SQS", "Custom Event Bus"},
			Protocols:    []string{"Kafka Protocol", "AMQP", "WebSocket", "Server-Sent Events"},
			CapacityMetrics: catalog.Metrics{
				"messages_per_second": 50000000,
				"topics":              10000,
				"partitions":          100000,
				"retention_hours":     168,
			},
			Position:        catalog.Position{X: 500, Y: 350},
			Connections:     []catalog.ComponentType{catalog.GameServer, catalog.Monitoring, catalog.APIGateway},
			DifficultyLevel: catalog.Advanced,
			StepOrder:       7,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Monitoring & Observability",
			Type:        catalog.Monitoring,
			Description: "Tracks system health and performance metrics",
			DetailedExplanation: "Comprehensive monitoring stack with metrics collection, distributed tracing, log " +
				"aggregation, and alerting. Provides real-time visibility into system performance and user experience.",
			Technologies: []string{"Prometheus", "Grafana", "ELK Stack", "Jaeger", "DataDog"},
			Protocols:    []string{"HTTP", "gRPC", "StatsD", "OpenTelemetry"},
			CapacityMetrics: catalog.Metrics{
				"metrics_per_second":     100000000,
				"log_entries_per_second": 10000000,
				"alerts_per_day":         1000,
				"dashboards":             5000,
			},
			Position:        catalog.Position{X: 600, Y: 250},
			Connections:     []catalog.ComponentType{catalog.MessageQueue, catalog.GameServer, catalog.Database},
			DifficultyLevel: catalog.Intermediate,
			StepOrder:       8,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Security & DDoS Protection",
			Type:        catalog.Security,
			Description: "Protects against attacks and unauthorized access",
			DetailedExplanation: "Multi-layered security including DDoS protection, Web Application Firewall, " +
				"intrusion detection, and rate limiting. Implements OAuth, JWT tokens, and encryption for secure " +
				"communication.",
			Technologies: []string{"Cloudflare", "AWS Shield", "WAF", "OAuth 2.0", "JWT"},
			Protocols:    []string{"HTTPS", "OAuth", "JWT", "TLS 1.3"},
			CapacityMetrics: catalog.Metrics{
				"requests_filtered_per_second": 1000000,
				"attack_mitigation_time_ms":    100,
				"false_positive_rate":          0.1,
				"security_events_per_day":      100000,
			},
			Position:        catalog.Position{X: 50, Y: 250},
			Connections:     []catalog.ComponentType{catalog.LoadBalancer, catalog.APIGateway},
			DifficultyLevel: catalog.Advanced,
			StepOrder:       9,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Data Storage & Analytics",
			Type:        catalog.Storage,
			Description: "Stores game assets, logs, and analytics data",
			DetailedExplanation: "Distributed storage system for game assets, player data, and analytics. Uses " +
				"object storage, data lakes, and real-time analytics for business intelligence and game optimization.",
			Technologies: []string{"AWS S3", "HDFS", "Snowflake", "Apache Spark", "BigQuery"},
			Protocols:    []string{"HTTP", "HDFS Protocol", "SQL", "Parquet"},
			CapacityMetrics: catalog.Metrics{
				"storage_pb":                 100,
				"files_count":                1000000000,
				"analytics_queries_per_day":  1000000,
				"data_processing_tb_per_day": 1000,
			},
			Position:        catalog.Position{X: 400, Y: 100},
			Connections:     []catalog.ComponentType{catalog.CDN, catalog.GameServer, catalog.Monitoring},
			DifficultyLevel: catalog.Intermediate,
			StepOrder:       10,
		},
	}
}

// Steps returns the narrated player-request journey in order.
func Steps() []catalog.JourneyStep {
	return []catalog.JourneyStep{
		{
			ID:                 uuid.NewString(),
			StepNumber:         1,
			Title:              "Player Request Arrives",
			Description:        "A player opens Roblox and makes a request to join a game",
			ComponentsInvolved: []catalog.ComponentType{catalog.LoadBalancer, catalog.Security},
			DiagramFocus:       []catalog.ComponentType{catalog.LoadBalancer},
			TechnicalDetails: map[string]interface{}{
				"request_flow":   "Client → DNS → Global Load Balancer → Regional Load Balancer",
				"protocols":      []string{"DNS", "HTTP/2", "TLS 1.3"},
				"latency_target": "< 50ms",
			},
			BeginnerExplanation: "When you click 'Play' on a Roblox game, your request first goes to a load " +
				"balancer that decides which server should handle your request based on your location and server capacity.",
			AdvancedExplanation: "The global load balancer uses GeoDNS and anycast routing to direct the request " +
				"to the optimal regional cluster. It performs health checks, capacity assessment, and implements " +
				"sticky sessions for connection persistence.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         2,
			Title:              "Security & DDoS Protection",
			Description:        "Request passes through security layers and DDoS protection",
			ComponentsInvolved: []catalog.ComponentType{catalog.Security, catalog.LoadBalancer},
			DiagramFocus:       []catalog.ComponentType{catalog.Security},
			TechnicalDetails: map[string]interface{}{
				"security_layers":             []string{"Rate Limiting", "WAF", "DDoS Protection", "IP Reputation"},
				"processing_time":             "< 5ms",
				"blocked_requests_per_second": 100000,
			},
			BeginnerExplanation: "Before your request reaches the game servers, it passes through security " +
				"systems that block malicious traffic and protect against attacks.",
			AdvancedExplanation: "Multi-layered security including L3/L4 DDoS protection, L7 WAF rules, " +
				"behavioral analysis, and machine learning-based threat detection. Implements challenge-response " +
				"for suspicious traffic.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         3,
			Title:              "CDN Asset Delivery",
			Description:        "Game assets are served from the nearest CDN edge location",
			ComponentsInvolved: []catalog.ComponentType{catalog.CDN, catalog.Storage},
			DiagramFocus:       []catalog.ComponentType{catalog.CDN},
			TechnicalDetails: map[string]interface{}{
				"cache_strategy":  "LRU with TTL",
				"edge_locations":  200,
				"cache_hit_ratio": 95,
			},
			BeginnerExplanation: "Game graphics, sounds, and other files are loaded from servers close to your " +
				"location for faster loading times.",
			AdvancedExplanation: "Intelligent edge caching with dynamic content optimization, image compression, " +
				"and prefetching. Uses HTTP/2 push and service workers for optimal asset delivery.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         4,
			Title:              "API Gateway Routing",
			Description:        "Request is routed to appropriate microservices",
			ComponentsInvolved: []catalog.ComponentType{catalog.APIGateway, catalog.GameServer},
			DiagramFocus:       []catalog.ComponentType{catalog.APIGateway},
			TechnicalDetails: map[string]interface{}{
				"routing_algorithm": "Weighted Round Robin",
				"circuit_breaker":   "Enabled",
				"retry_policy":      "Exponential Backoff",
			},
			BeginnerExplanation: "The API Gateway acts like a smart router that sends different types of " +
				"requests to the right services that can handle them.",
			AdvancedExplanation: "Service mesh with intelligent routing, load balancing, circuit breaking, and " +
				"distributed tracing. Implements canary deployments and A/B testing capabilities.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         5,
			Title:              "Game Server Assignment",
			Description:        "Player is assigned to an optimal game server instance",
			ComponentsInvolved: []catalog.ComponentType{catalog.GameServer, catalog.Database, catalog.Cache},
			DiagramFocus:       []catalog.ComponentType{catalog.GameServer},
			TechnicalDetails: map[string]interface{}{
				"placement_algorithm": "Proximity + Capacity",
				"server_capacity":     100,
				"scaling_strategy":    "Horizontal Auto-scaling",
			},
			BeginnerExplanation: "You're connected to a game server that has space and is close to your " +
				"location for the best gaming experience.",
			AdvancedExplanation: "Kubernetes-based orchestration with custom scheduler considering latency, " +
				"resource utilization, and game-specific requirements. Implements predictive scaling and resource quotas.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         6,
			Title:              "Database Operations",
			Description:        "Player data and game state are retrieved from distributed databases",
			ComponentsInvolved: []catalog.ComponentType{catalog.Database, catalog.Cache},
			DiagramFocus:       []catalog.ComponentType{catalog.Database},
			TechnicalDetails: map[string]interface{}{
				"sharding_strategy":  "Consistent Hashing",
				"replication_factor": 3,
				"consistency_model":  "Eventually Consistent",
			},
			BeginnerExplanation: "Your player profile, inventory, and game progress are loaded from databases " +
				"that store millions of players' information.",
			AdvancedExplanation: "Horizontally partitioned databases with read replicas, write-through caching, " +
				"and conflict-free replicated data types (CRDTs) for distributed consistency.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         7,
			Title:              "Real-time Communication",
			Description:        "WebSocket connections established for real-time gameplay",
			ComponentsInvolved: []catalog.ComponentType{catalog.MessageQueue, catalog.GameServer},
			DiagramFocus:       []catalog.ComponentType{catalog.MessageQueue},
			TechnicalDetails: map[string]interface{}{
				"protocol":     "WebSocket + Custom Binary",
				"message_rate": "30 FPS",
				"compression":  "LZ4",
			},
			BeginnerExplanation: "A fast, continuous connection is established so you can see other players' " +
				"actions in real-time as you play.",
			AdvancedExplanation: "Event-driven architecture with message queues, event sourcing, and CQRS " +
				"pattern. Implements delta compression and client-side prediction for smooth gameplay.",
		},
		{
			ID:                 uuid.NewString(),
			StepNumber:         8,
			Title:              "Monitoring & Analytics",
			Description:        "System continuously monitors performance and player behavior",
			ComponentsInvolved: []catalog.ComponentType{catalog.Monitoring, catalog.Storage},
			DiagramFocus:       []catalog.ComponentType{catalog.Monitoring},
			TechnicalDetails: map[string]interface{}{
				"metrics_collection": "Prometheus + Custom Collectors",
				"log_aggregation":    "ELK Stack",
				"alerting":           "PagerDuty Integration",
			},
			BeginnerExplanation: "Behind the scenes, systems constantly check that everything is working " +
				"properly and collect data to improve the game.",
			AdvancedExplanation: "Distributed tracing with OpenTelemetry, real-time anomaly detection, and " +
				"machine learning-based capacity planning. Implements SLI/SLO monitoring and automated remediation.",
		},
	}
}

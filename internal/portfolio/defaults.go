package portfolio

// DefaultContent reproduces the three built-in case studies. Operators
// override it by dropping a content.yml next to the binary.
func DefaultContent() *Content {
	c := &Content{
		Title:   "Architecture Improvement",
		Tagline: "Three recent infrastructure transformations with measurable impact.",
		Hint:    "Hint: the access code is printed at the top-right of my resume.",
		Resume:  "resume.pdf",
		Cases: []Case{
			{
				Title: "1) F/E Storage Account + public API → F/E containerized with B/E (BFF on AKS)",
				Panels: []Panel{
					{
						Heading:  "Before (SPA + public API)",
						Diagram:  "fe_before.html",
						Fallback: "fe_before.webp",
						Bullets: []string{
							"Frontend hosted on **Storage static website**",
							"Browser calls **public API** through the edge → CORS & more hops",
							"Azure Front Door routes to Storage (FE) and AKS (API) separately",
						},
						KPIs: []KPI{
							{Label: "Latency", Value: "↑", Note: "edge hops + CORS"},
							{Label: "Surface", Value: "wider", Note: "public API exposed"},
						},
					},
					{
						Heading:  "After (BFF on AKS)",
						Diagram:  "fe_after.html",
						Fallback: "fe_after.webp",
						Bullets: []string{
							"FE containerized & deployed **with B/E** in the same AKS cluster",
							"**Single origin** via AFD → AKS over Private Link (**no CORS**)",
							"FE ↔ BE are **in-cluster** service-to-service (**BFF** pattern)",
							"Simpler deploys / rollback / observability",
						},
						KPIs: []KPI{
							{Label: "Latency", Value: "↓", Note: "fewer edge hops"},
							{Label: "Security", Value: "↑", Note: "no public API"},
						},
					},
				},
				FlowTitle: "Traffic Flow (Before vs. After)",
				Flow: `1) **Client → Azure FD**
   - Browser → Azure FD with WAF (TLS at AFD)
   - **Before:** Two hosts (F/E & B/E) ⇒ CORS required
   - **After:** Single host ⇒ no CORS for web ↔ API

2) **AFD → Origin via Private Link**
   - AFD → **PE (consumer)** → **PLS (provider)** performs **SNAT**
   - **Before (F/E origin):** PLS → **Storage static website** (HTML/JS/CSS)
   - **After (AKS origin):** PLS → **Internal Standard LB** → **Nginx Ingress (AKS)**

3) **App ↔ API path**
   - **Before:** Browser JS calls API directly via AFD to AKS
   - **After:** FE server (pods) calls BE **in-cluster** via ` + "`ClusterIP/DNS`" + `

4) **AKS egress** → **Azure Firewall** (SNAT to public IP)

5) **DNS Proxy** → Azure DNS / Private Resolver for Private Link names`,
				HighTitle: "Transformation Highlights",
				Highlights: `**Performance & Cost**
- In-cluster FE→BE calls cut Internet/edge hops ⇒ **lower latency**
- **Egress savings**: FE↔BE stays inside the cluster

**Security**
- Public API removed (API is **ClusterIP-only**)
- Origin reachable only via **AFD → PE → PLS → ILB → Ingress**
- Single controlled egress (Firewall **SNAT**) ⇒ simpler allow-listing & audit

**DevOps & Observability**
- Unified **CI/CD** & rollbacks; cleaner **health probes / logging**`,
			},
			{
				Title: "2) Direct pulls from Docker Hub → In-cluster Nexus Docker proxy (pull-through cache)",
				Panels: []Panel{
					{
						Heading:  "Before (external dependency)",
						Diagram:  "nexus.html",
						Fallback: "nexus_before.webp",
						Bullets: []string{
							"Every node/pod pulled images from **Docker Hub** via Firewall SNAT",
							"Hit **429 rate-limits** during AKS upgrades",
							"Slow cold pulls; no in-cluster cache",
						},
					},
					{
						Heading:  "After (internal proxy cache)",
						Diagram:  "nexus.html",
						Fallback: "nexus_after.webp",
						Bullets: []string{
							"**Nexus Docker proxy** inside AKS (pull-through cache via Ingress)",
							"Manifests retargeted to `docker-group.dev.sgarch.net` (GitOps)",
							"Only **cache-miss** goes to Docker Hub; reliable upgrades",
							"Private registry endpoint improves control & auditability",
						},
						KPIs: []KPI{
							{Label: "429 errors", Value: "0", Note: "during upgrades"},
							{Label: "Cold pull", Value: "~60 ms", Note: "cached layer"},
						},
					},
				},
			},
			{
				Title: "3) Keycloak Deployment + sticky sessions → StatefulSet clustering + build cache (PVC)",
				Panels: []Panel{
					{
						Heading:  "Before (no clustering)",
						Diagram:  "keycloak.html",
						Fallback: "keycloak_before.webp",
						Bullets: []string{
							"Ran as a Deployment; sticky sessions at ingress",
							"Quarkus build on each start → **~6 min cold start**",
							"Multi-pod token exchange failed at times (no shared cache)",
						},
					},
					{
						Heading:  "After (HA + fast start)",
						Diagram:  "keycloak.html",
						Fallback: "keycloak_after.webp",
						Bullets: []string{
							"Migrated to **StatefulSet** + **Headless Service**",
							"**DNS_PING + JGroups/Infinispan** replicate auth/session state",
							"InitContainer caches Quarkus build to **PVC**; Keycloak `--optimized` start",
							"**Startup ~55 s**; any pod can complete OAuth flow",
						},
						KPIs: []KPI{
							{Label: "Startup", Value: "~55 s", Note: "from 6+ min"},
							{Label: "HA", Value: "Multi-pod", Note: "podAntiAffinity + PDB"},
							{Label: "Auth errors", Value: "0", Note: "during rollout"},
						},
					},
				},
			},
		},
	}
	c.fillDefaults()
	return c
}

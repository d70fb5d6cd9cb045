package httpapi

import "net/http"

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	html := `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>fragrance-match — demo</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin: 16px; max-width: 900px; }
    textarea { width: 100%; min-height: 240px; font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace; }
    button { padding: 10px 14px; font-size: 16px; }
    pre { white-space: pre-wrap; word-wrap: break-word; background: #f6f6f6; padding: 12px; border-radius: 10px; }
    .card { border: 1px solid #e6e6e6; border-radius: 12px; padding: 12px; margin-top: 12px; }
    .pick { border: 1px solid #eaeaea; border-radius: 12px; padding: 10px; margin-top: 8px; }
    .muted { color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <h2>Find Your Fragrance Match</h2>
  <div class="muted">Server: <code>` + r.Host + `</code> — answer a few questions, get 3 tailored picks.</div>

  <div class="card">
    <div><b>Quiz answers (JSON) → POST /recommend</b></div>
    <textarea id="payload"></textarea>
    <div style="margin-top:10px;"><button id="btnMatch">Show my matches</button></div>
  </div>

  <div class="card">
    <div><b>Your top matches</b></div>
    <div id="picks" class="muted">Press the button…</div>
  </div>

  <div class="card">
    <div><b>Raw response</b></div>
    <pre id="out">—</pre>
  </div>

<script>
const defaultPayload = {
  profile: {
    climate: "mild",
    occasion: "office",
    intensity: "skin",
    longevity_goal: "workday",
    weight_pref: 0.40,
    brightness_pref: 0.35,
    aspiration: ["elegant"]
  },
  k: 3
};

const ta = document.getElementById("payload");
const out = document.getElementById("out");
const picksEl = document.getElementById("picks");
ta.value = JSON.stringify(defaultPayload, null, 2);

document.getElementById("btnMatch").addEventListener("click", async () => {
  out.textContent = "…";
  let payload;
  try { payload = JSON.parse(ta.value); } catch(e) {
    out.textContent = "JSON error: " + e.message;
    return;
  }
  try {
    const res = await fetch("/recommend", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(payload)
    });
    const text = await res.text();
    out.textContent = text;
    const data = JSON.parse(text);
    const results = (data && data.results) ? data.results : [];
    picksEl.innerHTML = "";
    results.forEach((p, i) => {
      const div = document.createElement("div");
      div.className = "pick";
      div.innerHTML =
        "<div><b>" + (i+1) + ". " + p.name + "</b> <span class='muted'>(score " + p.score + ")</span></div>" +
        "<div class='muted'>Archetypes: " + (p.archetypes || []).join(", ") + "</div>" +
        "<div style='margin-top:6px;'>" + p.explanation + "</div>";
      picksEl.appendChild(div);
    });
    if (results.length === 0) picksEl.textContent = "No picks.";
  } catch (e) {
    out.textContent = "Request error: " + e.message;
  }
});
</script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

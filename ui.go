package main

type indexData struct {
	Zone       string
	ARecords   []aliasedARecord
	CNAMEs     []record
	DefaultTTL uint32
	Message    string
	Kind       string
	Now        string
}

type editData struct {
	Record record
}

const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Local DNS Overrides</title>
  <style>
    :root { --bg:#f5f7fa; --card:#fff; --txt:#1f2937; --muted:#6b7280; --accent:#0f766e; --ok:#166534; --bad:#b91c1c; }
    * { box-sizing:border-box; }
    body { margin:0; font-family: ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial; color:var(--txt); background:var(--bg); }
    .wrap { max-width:1100px; margin:0 auto; padding:20px; }
    .grid { display:grid; gap:16px; grid-template-columns: repeat(auto-fit,minmax(320px,1fr)); }
    .card { background:var(--card); border-radius:12px; padding:16px; box-shadow:0 1px 6px rgba(0,0,0,.07); }
    h1,h2 { margin:0 0 10px; }
    h1 { font-size:24px; }
    h2 { font-size:18px; }
    label { display:block; font-size:13px; margin:8px 0 4px; color:var(--muted); }
    input,select,button { width:100%; padding:10px; border-radius:8px; border:1px solid #d1d5db; }
    button { background:var(--accent); border:none; color:white; font-weight:600; margin-top:10px; cursor:pointer; }
    table { width:100%; border-collapse:collapse; font-size:13px; }
    th,td { padding:8px; border-bottom:1px solid #e5e7eb; text-align:left; vertical-align:top; }
    .flash-success { color:var(--ok); font-weight:600; }
    .flash-error { color:var(--bad); font-weight:600; }
    .mono { font-family: ui-monospace,SFMono-Regular,Menlo,Consolas,monospace; }
    .small { color:var(--muted); font-size:12px; }
    .row-actions form { display:inline; }
    .row-actions button { width:auto; padding:6px 10px; margin:0; }
    .row-actions a { display:inline-block; padding:6px 10px; border-radius:8px; background:#e5e7eb; color:var(--txt); text-decoration:none; font-size:13px; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>Local DNS Overrides</h1>
    <p class="small">Zone {{.Zone}}. &mdash; records here override upstream resolution. Time: {{.Now}}</p>
    {{if .Message}}<p class="{{if eq .Kind "error"}}flash-error{{else}}flash-success{{end}}">{{.Message}}</p>{{end}}

    <div class="grid">
      <section class="card">
        <h2>Add Record</h2>
        <form method="post" action="/add">
          <label>Domain</label><input name="domain" placeholder="web.{{.Zone}}" required>
          <label>Type</label>
          <select name="type">
            <option>A</option>
            <option>CNAME</option>
          </select>
          <label>Value (IPv4 for A, target hostname for CNAME)</label><input name="value" required>
          <label>TTL (seconds)</label><input name="ttl" value="{{.DefaultTTL}}">
          <button type="submit">Add Record</button>
        </form>
      </section>

      <section class="card">
        <h2>A Records</h2>
        {{if .ARecords}}
        <table>
          <thead><tr><th>Domain</th><th>IP</th><th>TTL</th><th>Aliases</th><th></th></tr></thead>
          <tbody>
            {{range .ARecords}}
            <tr>
              <td class="mono">{{.Domain}}</td>
              <td class="mono">{{.Value}}</td>
              <td>{{.TTL}}</td>
              <td class="mono">{{range $i, $a := .Aliases}}{{if $i}}, {{end}}{{$a}}{{end}}</td>
              <td class="row-actions">
                <a href="/edit/{{.ID}}">Edit</a>
                <form method="post" action="/delete/{{.ID}}">
                  <button type="submit">Delete</button>
                </form>
              </td>
            </tr>
            {{end}}
          </tbody>
        </table>
        {{else}}
        <p>No A records yet.</p>
        {{end}}
      </section>

      <section class="card">
        <h2>Unmapped CNAMEs</h2>
        <p class="small">CNAME records whose resolved address matches no A record above. Unresolved targets are left out of the generated config.</p>
        {{if .CNAMEs}}
        <table>
          <thead><tr><th>Domain</th><th>Target</th><th>Resolved IP</th><th>TTL</th><th></th></tr></thead>
          <tbody>
            {{range .CNAMEs}}
            <tr>
              <td class="mono">{{.Domain}}</td>
              <td class="mono">{{.Value}}</td>
              <td class="mono">{{if .ResolvedIP}}{{.ResolvedIP}}{{else}}unresolved{{end}}</td>
              <td>{{.TTL}}</td>
              <td class="row-actions">
                <a href="/edit/{{.ID}}">Edit</a>
                <form method="post" action="/delete/{{.ID}}">
                  <button type="submit">Delete</button>
                </form>
              </td>
            </tr>
            {{end}}
          </tbody>
        </table>
        {{else}}
        <p>No unmapped CNAME records.</p>
        {{end}}
      </section>
    </div>
  </div>
</body>
</html>`

const editHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Edit Record</title>
  <style>
    body { margin:0; font-family: ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial; color:#1f2937; background:#f5f7fa; }
    .wrap { max-width:480px; margin:0 auto; padding:20px; }
    .card { background:#fff; border-radius:12px; padding:16px; box-shadow:0 1px 6px rgba(0,0,0,.07); }
    h1 { font-size:20px; margin:0 0 10px; }
    label { display:block; font-size:13px; margin:8px 0 4px; color:#6b7280; }
    input,select,button { width:100%; padding:10px; border-radius:8px; border:1px solid #d1d5db; box-sizing:border-box; }
    button { background:#0f766e; border:none; color:white; font-weight:600; margin-top:10px; cursor:pointer; }
    a { color:#0f766e; font-size:13px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="card">
      <h1>Edit Record #{{.Record.ID}}</h1>
      <form method="post" action="/edit/{{.Record.ID}}">
        <label>Domain</label><input name="domain" value="{{.Record.Domain}}" required>
        <label>Type</label>
        <select name="type">
          <option {{if eq .Record.Type "A"}}selected{{end}}>A</option>
          <option {{if eq .Record.Type "CNAME"}}selected{{end}}>CNAME</option>
        </select>
        <label>Value</label><input name="value" value="{{.Record.Value}}" required>
        <label>TTL (seconds)</label><input name="ttl" value="{{.Record.TTL}}" required>
        <button type="submit">Save</button>
      </form>
      <p><a href="/">&larr; Back to records</a></p>
    </div>
  </div>
</body>
</html>`

package document

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} - {{.Registration}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: Arial, sans-serif; font-size: 14px; line-height: 1.5; color: #333; padding: 40px; }
    .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #1e40af; padding-bottom: 20px; }
    .header h1 { color: #1e40af; font-size: 24px; margin-bottom: 5px; }
    .header p { color: #666; }
    .section { margin-bottom: 25px; page-break-inside: avoid; }
    .section-title { background: #1e40af; color: white; padding: 8px 15px; font-size: 14px; font-weight: bold; margin-bottom: 15px; }
    .info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 15px; }
    .info-item { background: #f8fafc; padding: 10px; border-radius: 5px; }
    .info-label { font-size: 12px; color: #666; margin-bottom: 3px; }
    .info-value { font-weight: bold; color: #1e40af; }
    .damages-table { width: 100%; border-collapse: collapse; }
    .damages-table th, .damages-table td { border: 1px solid #ddd; padding: 10px; text-align: left; }
    .damages-table th { background: #f1f5f9; font-weight: bold; }
    .severity-minor { color: #f59e0b; }
    .severity-moderate { color: #f97316; }
    .severity-severe { color: #dc2626; }
    .photos-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; }
    .photo-item img { width: 100%; height: 150px; object-fit: cover; border-radius: 5px; }
    .signatures { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-top: 30px; }
    .signature-box { border: 1px solid #ddd; padding: 15px; text-align: center; }
    .signature-box img { max-width: 200px; height: auto; }
    .signature-label { margin-top: 10px; font-weight: bold; color: #666; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center; font-size: 12px; color: #666; }
    .meter-bar { background: #e5e7eb; height: 20px; border-radius: 10px; overflow: hidden; }
    .meter-fill { height: 100%; background: linear-gradient(90deg, #dc2626, #f59e0b, #22c55e); }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
    <p>{{.AgencyName}} - {{.ReportDate}}</p>
  </div>

  <div class="section">
    <div class="section-title">GENERAL INFORMATION</div>
    <div class="info-grid">
      <div class="info-item">
        <div class="info-label">Client</div>
        <div class="info-value">{{.ClientName}}</div>
        <div>{{.ClientEmail}}</div>
        {{if .ClientPhone}}<div>{{.ClientPhone}}</div>{{end}}
      </div>
      <div class="info-item">
        <div class="info-label">Vehicle</div>
        <div class="info-value">{{.Registration}}</div>
        <div>{{.VehicleLine}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Departure date</div>
        <div class="info-value">{{.DepartureAt}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Return date</div>
        <div class="info-value">{{.ReturnAt}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Agent</div>
        <div class="info-value">{{.AgentName}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Reference</div>
        <div class="info-value">{{.Reference}}</div>
      </div>
    </div>
  </div>

  <div class="section">
    <div class="section-title">VEHICLE STATE</div>
    <div class="info-grid">
      <div class="info-item">
        <div class="info-label">Mileage</div>
        <div class="info-value">{{.Mileage}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Fuel level</div>
        <div class="info-value">{{.FuelLevel}}%</div>
        <div class="meter-bar" style="margin-top: 5px;">
          <div class="meter-fill" style="width: {{.FuelLevel}}%;"></div>
        </div>
      </div>
      <div class="info-item">
        <div class="info-label">Cleanliness</div>
        <div class="info-value">{{.Cleanliness}}</div>
      </div>
      <div class="info-item">
        <div class="info-label">Comments</div>
        <div>{{.Comments}}</div>
      </div>
    </div>
  </div>

  {{if .Damages}}
  <div class="section">
    <div class="section-title">RECORDED DAMAGES ({{len .Damages}})</div>
    <table class="damages-table">
      <thead>
        <tr>
          <th>Location</th>
          <th>Description</th>
          <th>Severity</th>
          <th>New</th>
        </tr>
      </thead>
      <tbody>
        {{range .Damages}}
        <tr>
          <td>{{.Location}}</td>
          <td>{{.Description}}</td>
          <td class="{{.CSSClass}}">{{.Severity}}</td>
          <td>{{.IsNew}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}

  {{if .Photos}}
  <div class="section">
    <div class="section-title">PHOTOS ({{len .Photos}})</div>
    <div class="photos-grid">
      {{range .Photos}}
      <div class="photo-item">
        <img src="{{.URL}}" alt="{{.Description}}" />
      </div>
      {{end}}
    </div>
  </div>
  {{end}}

  <div class="section signatures">
    <div class="signature-box">
      {{if .ClientSigURL}}<img src="{{.ClientSigURL}}" alt="Client signature" />{{else}}<p>No signature</p>{{end}}
      <div class="signature-label">Client signature</div>
    </div>
    <div class="signature-box">
      {{if .AgentSigURL}}<img src="{{.AgentSigURL}}" alt="Agent signature" />{{else}}<p>No signature</p>{{end}}
      <div class="signature-label">Agent signature</div>
    </div>
  </div>

  <div class="footer">
    <p>Document generated automatically on {{.GeneratedAt}}</p>
    <p>{{.AgencyLine}}</p>
  </div>
</body>
</html>
`

package server

// tailoringPage is the single-page UI: a job description form, an analysis
// preview, and the generated LaTeX with copy-to-clipboard. Its script reads
// the latex, jd_analysis and selection_info keys of the generate response.
const tailoringPage = `<!DOCTYPE html>
<html>
<head>
    <title>TailorCV</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; margin: 0; padding: 0; }
        .container { background: white; padding: 40px; border-radius: 10px; max-width: 900px; margin: 40px auto; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; margin-bottom: 10px; }
        .subtitle { color: #666; margin-bottom: 30px; }
        .features { background: #e8f5e8; padding: 15px; border-radius: 5px; margin-bottom: 20px; border-left: 4px solid #28a745; }
        .instructions { background: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 30px; font-size: 14px; line-height: 1.6; }
        textarea { width: 100%; height: 300px; margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 5px; font-size: 14px; font-family: monospace; resize: vertical; box-sizing: border-box; }
        #output { width: 100%; height: 600px; font-family: 'Courier New', monospace; font-size: 12px; background: #f8f8f8; border: 1px solid #ddd; border-radius: 5px; padding: 15px; white-space: pre-wrap; overflow-x: auto; resize: vertical; box-sizing: border-box; }
        button { background: #007bff; color: white; padding: 12px 30px; border: none; cursor: pointer; border-radius: 5px; font-size: 16px; font-weight: 500; margin-right: 10px; transition: background 0.3s; }
        button:hover { background: #0056b3; }
        button:disabled { background: #ccc; cursor: not-allowed; }
        .loading { display: none; color: #007bff; margin-left: 15px; }
        #result { margin-top: 30px; display: none; }
        .error { background: #fee; color: #c33; padding: 15px; border-radius: 5px; margin-bottom: 15px; }
        .success { color: #28a745; background: #d4edda; padding: 15px; border-radius: 5px; margin-bottom: 15px; }
        .copy-button { background: #28a745; }
        .copy-button:hover { background: #218838; }
        .analysis-preview { background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 10px 0; font-size: 12px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🚀 TailorCV</h1>
        <p class="subtitle">Intelligent CV Generation for All Job Types</p>

        <div class="features">
            <strong>✨ Features:</strong><br>
            • <strong>Job Analysis:</strong> Detects role type (Mobile, AI/ML, Frontend, Backend, etc.)<br>
            • <strong>Smart Experience Selection:</strong> Automatically picks the most relevant experiences<br>
            • <strong>Project Filtering:</strong> Selects the best projects for the job requirements<br>
            • <strong>Varied Metrics:</strong> Uses realistic, varied performance numbers<br>
            • <strong>Role-Specific Skills:</strong> Adapts the technical skills section to the job type<br>
            • <strong>Industry Context:</strong> Tailors content for healthcare, fintech, enterprise, etc.
        </div>

        <div class="instructions">
            <strong>📝 How It Works:</strong><br>
            • Paste any job description (Mobile Dev, AI Engineer, Backend, etc.)<br>
            • The job is analyzed for role type, seniority, and required skills<br>
            • Your most relevant experiences and projects are selected automatically<br>
            • Targeted bullet points, a professional summary, and a skills section are generated<br><br>

            <strong>🎯 Supported Role Types:</strong><br>
            Mobile, AI/ML, Frontend, Backend, Full-Stack, DevOps, Data Engineer, Blockchain, Product, QA
        </div>

        <form id="cvForm">
            <label for="job_description">Paste Job Description:</label>
            <textarea id="job_description" name="job_description" placeholder="Paste the complete job description here..." required></textarea>
            <button type="submit">Generate Tailored CV</button>
            <span class="loading">🧠 Analyzing job requirements and crafting your CV...</span>
        </form>

        <div id="result">
            <div id="message"></div>
            <div id="analysis-preview" class="analysis-preview" style="display:none;"></div>
            <button class="copy-button" onclick="copyToClipboard()" style="display:none;">Copy LaTeX Code</button>
            <textarea id="output" readonly placeholder="Your tailored LaTeX code will appear here..."></textarea>
        </div>
    </div>

    <script>
        function copyToClipboard() {
            const output = document.getElementById('output');
            output.select();
            output.setSelectionRange(0, 99999);
            document.execCommand('copy');
            alert('LaTeX code copied to clipboard!');
        }

        document.getElementById('cvForm').addEventListener('submit', async function(e) {
            e.preventDefault();

            const button = e.target.querySelector('button[type="submit"]');
            const loading = document.querySelector('.loading');
            const result = document.getElementById('result');
            const message = document.getElementById('message');
            const output = document.getElementById('output');
            const copyButton = document.querySelector('.copy-button');
            const analysisPreview = document.getElementById('analysis-preview');

            button.disabled = true;
            loading.style.display = 'inline';
            result.style.display = 'none';
            output.value = '';
            analysisPreview.style.display = 'none';

            try {
                const formData = new FormData(e.target);
                const response = await fetch('/generate', {
                    method: 'POST',
                    body: formData
                });

                const data = await response.json();

                if (response.ok && data.latex) {
                    message.innerHTML = '<div class="success">✅ CV generated! The job was analyzed and a tailored document assembled.</div>';
                    output.value = data.latex;
                    copyButton.style.display = 'inline-block';

                    if (data.jd_analysis && data.selection_info) {
                        const lines = [
                            '🎯 Job Analysis:',
                            '• Role Type: ' + (data.jd_analysis.role_type || 'N/A'),
                            '• Seniority Level: ' + (data.jd_analysis.seniority_level || 'N/A'),
                            '• Industry Context: ' + (data.jd_analysis.industry_context || 'N/A'),
                            '• Primary Skills: ' + (data.jd_analysis.primary_skills || []).join(', '),
                            '• Key Technologies: ' + (data.jd_analysis.key_technologies || []).join(', '),
                            '',
                            '🔍 Smart Selection:',
                            '• Experiences: Selected ' + data.selection_info.selected_experiences + '/' + data.selection_info.total_experiences + ' most relevant',
                            '• Projects: Selected ' + data.selection_info.selected_projects + '/' + data.selection_info.total_projects + ' most relevant',
                            '',
                            '📄 Generated Content:',
                            '• Role-specific professional summary',
                            '• ' + ((data.experiences && data.experiences.length) || 0) + ' tailored experience sections',
                            '• ' + ((data.projects && data.projects.length) || 0) + ' targeted project descriptions',
                            '• Adaptive technical skills section'
                        ];
                        analysisPreview.textContent = lines.join('\n');
                        analysisPreview.style.display = 'block';
                    }
                } else {
                    message.innerHTML = '<div class="error">❌ Error: ' + (data.error || 'Unknown error occurred') + '</div>';
                    copyButton.style.display = 'none';
                }

                result.style.display = 'block';

            } catch (error) {
                message.innerHTML = '<div class="error">❌ Network Error: ' + error.message + '</div>';
                result.style.display = 'block';
                copyButton.style.display = 'none';
            } finally {
                button.disabled = false;
                loading.style.display = 'none';
            }
        });
    </script>
</body>
</html>
`
